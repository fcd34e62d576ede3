package enumdef

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/enumkit/pkg/enum"
)

type document[V comparable] struct {
	Name    string      `yaml:"name"`
	Members []member[V] `yaml:"members"`
}

type member[V comparable] struct {
	Name  string    `yaml:"name"`
	Value *V        `yaml:"value"`
	Label *string   `yaml:"label"`
	Data  enum.Data `yaml:"data"`
}

// Parse declares an enumeration with value type V from YAML content.
func Parse[V comparable](ctx context.Context, content []byte, opts ...Option) (*enum.Type[V], error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, ErrEmptyContent
	}

	var doc document[V]
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return build(doc, o)
}

// ParseAny declares an enumeration whose value type is chosen from the
// document: int when every value is an integer, string when every value is a
// string.
func ParseAny(ctx context.Context, content []byte, opts ...Option) (enum.Enumeration, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, ErrEmptyContent
	}

	var doc document[any]
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	var ints, strs int
	for _, m := range doc.Members {
		if m.Value == nil {
			return nil, errors.Join(ErrInvalidDefinition, fmt.Errorf("%w: %s", ErrMissingValue, m.Name))
		}
		switch (*m.Value).(type) {
		case int:
			ints++
		case string:
			strs++
		}
	}

	switch {
	case len(doc.Members) == 0:
		return nil, errors.Join(ErrInvalidDefinition, enum.ErrNoMembers)
	case ints == len(doc.Members):
		t, err := Parse[int](ctx, content, opts...)
		if err != nil {
			return nil, err
		}
		return t, nil
	case strs == len(doc.Members):
		t, err := Parse[string](ctx, content, opts...)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, errors.Join(ErrInvalidDefinition, ErrMixedValueTypes)
	}
}

func build[V comparable](doc document[V], o *options) (*enum.Type[V], error) {
	members := make([]enum.Member[V], 0, len(doc.Members))
	var labels map[V]string
	var data map[V]enum.Data

	for _, m := range doc.Members {
		if m.Value == nil {
			return nil, errors.Join(ErrInvalidDefinition, fmt.Errorf("%w: %s", ErrMissingValue, m.Name))
		}
		v := *m.Value
		members = append(members, enum.Member[V]{Name: m.Name, Value: v})

		if m.Label != nil {
			if labels == nil {
				labels = make(map[V]string)
			}
			labels[v] = *m.Label
		}
		if m.Data != nil {
			if data == nil {
				data = make(map[V]enum.Data)
			}
			data[v] = m.Data
		}
	}

	opts := typeOptions[V](o)
	if labels != nil {
		opts = append(opts, enum.WithLabels(labels))
	}
	if data != nil {
		opts = append(opts, enum.WithData(data))
	}

	t, err := enum.New(doc.Name, members, opts...)
	if err != nil {
		return nil, errors.Join(ErrInvalidDefinition, err)
	}
	return t, nil
}
