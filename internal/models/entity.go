package models

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// FieldID is the primary key attribute every entity schema declares.
const FieldID = "id"

// Entity is the attribute bag shared by every GitLab resource model.
// Concrete types embed it and declare their Schema.
//
// Reads are whitelisted: Get fails for names outside the schema, while
// Hydrate silently drops unknown keys so new server fields never break
// older clients.
type Entity struct {
	schema   *Schema
	identity *int
	fields   map[string]Value
	client   Client
}

func newEntity(schema *Schema, client Client) Entity {
	return Entity{
		schema: schema,
		fields: make(map[string]Value, schema.Len()),
		client: client,
	}
}

func (e *Entity) entityName() string {
	if e.schema == nil {
		return "entity"
	}
	return e.schema.Entity()
}

// setData seeds a single field at construction time. The id field sets
// the identity instead of the attribute bag.
func (e *Entity) setData(name string, value any) {
	if name == FieldID {
		if id, ok := ValueOf(value).AsInt(); ok && e.identity == nil {
			e.identity = &id
		}
		return
	}
	if !e.schema.Has(name) {
		return
	}
	if e.fields == nil {
		e.fields = make(map[string]Value, e.schema.Len())
	}
	e.fields[name] = ValueOf(value)
}

// hydrate copies every declared key of payload into the attribute bag.
// A payload id that disagrees with an already set identity is dropped.
func (e *Entity) hydrate(payload map[string]any) {
	if e.fields == nil {
		e.fields = make(map[string]Value, e.schema.Len())
	}

	for key, raw := range payload {
		if !e.schema.Has(key) {
			logrus.WithFields(logrus.Fields{
				"entity": e.entityName(),
				"field":  key,
			}).Traceln("Dropping undeclared field from payload")
			continue
		}

		value := ValueOf(raw)

		if key == FieldID && !e.acceptIdentity(value) {
			logrus.WithFields(logrus.Fields{
				"entity":   e.entityName(),
				"identity": *e.identity,
				"payload":  raw,
			}).Debugln("Ignoring payload id that differs from entity identity")
			continue
		}

		e.fields[key] = value
	}
}

func (e *Entity) acceptIdentity(value Value) bool {
	if e.identity == nil {
		if id, ok := value.AsInt(); ok {
			e.identity = &id
		}
		return true
	}
	return ValueOf(*e.identity).Equal(value)
}

// Get returns the value of a declared field. Declared fields missing
// from every payload so far yield an unset Value and a nil error.
func (e *Entity) Get(name string) (Value, error) {
	if !e.schema.Has(name) {
		return Value{}, &SchemaError{Entity: e.entityName(), Field: name}
	}

	if value, ok := e.fields[name]; ok {
		return value, nil
	}

	if name == FieldID && e.identity != nil {
		return ValueOf(*e.identity), nil
	}

	return Value{}, nil
}

// ID returns the server-assigned identity, if any.
func (e *Entity) ID() (int, bool) {
	if e.identity == nil {
		return 0, false
	}
	return *e.identity, true
}

// Fields returns the hydrated field names in schema order.
func (e *Entity) Fields() []string {
	keys := make([]string, 0, len(e.fields))
	for _, field := range e.schema.Fields() {
		if _, ok := e.fields[field]; ok {
			keys = append(keys, field)
		}
	}
	return keys
}

func (e *Entity) SetClient(client Client) {
	e.client = client
}

// Client returns the transport the entity delegates its actions to.
func (e *Entity) Client() (Client, error) {
	if e.client == nil {
		return nil, &NotConfiguredError{Entity: e.entityName(), Missing: MissingClient}
	}
	return e.client, nil
}

// remote returns what every network action needs: the client and the
// identity of the entity it acts on.
func (e *Entity) remote() (Client, int, error) {
	client, err := e.Client()
	if err != nil {
		return nil, 0, err
	}
	id, ok := e.ID()
	if !ok {
		return nil, 0, &NotConfiguredError{Entity: e.entityName(), Missing: MissingIdentity}
	}
	return client, id, nil
}

// AsMap returns the hydrated fields as plain values.
func (e *Entity) AsMap() map[string]any {
	out := make(map[string]any, len(e.fields)+1)
	for key, value := range e.fields {
		out[key] = value.Interface()
	}
	if _, ok := out[FieldID]; !ok && e.identity != nil {
		out[FieldID] = *e.identity
	}
	return out
}

func (e *Entity) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.AsMap())
}
