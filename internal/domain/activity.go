package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft is not clamped: over-capacity data yields a negative number.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

func (a Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

func (a Activity) clone() Activity {
	a.Participants = slices.Clone(a.Participants)
	return a
}

// Catalog maps activity names to activities and remembers insertion order,
// which is also the order used when encoding and decoding JSON objects.
type Catalog struct {
	names []string
	items map[string]Activity
}

func NewCatalog(activities ...Activity) Catalog {
	var c Catalog
	for _, a := range activities {
		c.Put(a)
	}
	return c
}

// Put adds a or replaces the activity with the same name in place.
func (c *Catalog) Put(a Activity) {
	if c.items == nil {
		c.items = make(map[string]Activity)
	}
	if _, ok := c.items[a.Name]; !ok {
		c.names = append(c.names, a.Name)
	}
	c.items[a.Name] = a
}

func (c Catalog) Get(name string) (Activity, bool) {
	a, ok := c.items[name]
	return a, ok
}

func (c Catalog) Len() int {
	return len(c.names)
}

func (c Catalog) Names() []string {
	return slices.Clone(c.names)
}

func (c Catalog) All() []Activity {
	out := make([]Activity, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.items[name].clone())
	}
	return out
}

func (c Catalog) Clone() Catalog {
	return NewCatalog(c.All()...)
}

func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range c.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, fmt.Errorf("encode activity name: %w", err)
		}
		a := c.items[name]
		if a.Participants == nil {
			a.Participants = []string{}
		}
		val, err := json.Marshal(a)
		if err != nil {
			return nil, fmt.Errorf("encode activity %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c *Catalog) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	if tok == nil {
		return errors.New("catalog is null")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("catalog must be a JSON object, got %v", tok)
	}

	var out Catalog
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return fmt.Errorf("read activity name: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}

		var a Activity
		if err = dec.Decode(&a); err != nil {
			return fmt.Errorf("decode activity %q: %w", name, err)
		}
		a.Name = name
		out.Put(a)
	}

	if _, err = dec.Token(); err != nil {
		return fmt.Errorf("read catalog end: %w", err)
	}

	*c = out
	return nil
}
