package models

const (
	KeyFieldID        = FieldID
	KeyFieldTitle     = "title"
	KeyFieldKey       = "key"
	KeyFieldCreatedAt = "created_at"
)

var KeySchema = NewSchema("key",
	KeyFieldID,
	KeyFieldTitle,
	KeyFieldKey,
	KeyFieldCreatedAt,
)

// Key is an SSH public key registered to a user.
type Key struct {
	Entity
}

func NewKey(client Client, id int) *Key {
	k := &Key{Entity: newEntity(KeySchema, client)}
	k.setData(FieldID, id)
	return k
}

func KeyFromMap(client Client, data map[string]any) *Key {
	id := 0
	if raw, ok := data[FieldID]; ok {
		if parsed, ok := ValueOf(raw).AsInt(); ok {
			id = parsed
		}
	}
	return NewKey(client, id).Hydrate(data)
}

func (k *Key) Hydrate(data map[string]any) *Key {
	k.hydrate(data)
	return k
}

func (k *Key) Title() string {
	value, _ := k.Get(KeyFieldTitle)
	s, _ := value.AsString()
	return s
}

func (k *Key) PublicKey() string {
	value, _ := k.Get(KeyFieldKey)
	s, _ := value.AsString()
	return s
}
