package types

// Attribute is a single audit record entry emitted with a successful
// invocation.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func Attr(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// InvocationResult carries the outbound instructions and audit attributes of
// a successful invocation. A failed invocation produces no result at all.
type InvocationResult struct {
	Swaps      []SwapInstruction
	Transfers  []TransferInstruction
	Attributes []Attribute
}
