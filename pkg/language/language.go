package language

import "fmt"

// Language is the closed set of conversation languages the advisor supports.
type Language string

const (
	English Language = "en"
	Yoruba  Language = "yo"
)

// Parse maps a request language tag to a Language. An empty tag defaults to
// English, matching the web client's behavior when no selector is sent.
func Parse(tag string) (Language, error) {
	switch tag {
	case "", "en":
		return English, nil
	case "yo":
		return Yoruba, nil
	default:
		return "", fmt.Errorf("unsupported language %q", tag)
	}
}

func (l Language) String() string {
	return string(l)
}
