package entities

import "context"

type Item struct {
	Type string
}

type Parameter struct {
	Name        string
	Type        string
	Enum        []string
	Items       []Item
	Description string
	Required    bool
}

// Tool is the contract every query tool implements. Execute receives the
// raw JSON argument object sent by the calling agent and returns a
// JSON-serializable text result. Query failures degrade to the tool's
// neutral value rather than an error; the error return is reserved for
// conditions the transport itself should surface.
type Tool interface {
	Name() string
	Description() string
	Configuration() map[string]string
	Parameters() []Parameter
	Execute(ctx context.Context, arguments string) (string, error)
}
