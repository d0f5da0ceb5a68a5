package porkbun

import (
	"fmt"
	"strings"
)

// FieldPolicy controls how a declared body field behaves when the caller
// does not supply a value. The distinction matters to the registrar: for
// update-style operations an omitted key means "leave unchanged" while an
// empty string means "clear".
type FieldPolicy int

const (
	// FieldAlways fields appear in every request body, falling back to the
	// declared default when the caller supplies nothing.
	FieldAlways FieldPolicy = iota
	// FieldOmitEmpty fields appear only when the caller supplied a value.
	// A supplied empty string is still sent; an absent key is omitted.
	FieldOmitEmpty
)

// Field maps a logical argument name to its wire field name.
type Field struct {
	Arg     string // logical name used by callers
	Wire    string // field name on the request body
	Policy  FieldPolicy
	Default any // used only with FieldAlways
}

// Descriptor defines how one logical operation maps to a wire-level request.
// The endpoint template uses "/"-separated segments where "{name}" is a
// required path parameter and "{name?}" an optional trailing one, dropped
// together with its slash when no value is supplied. Descriptors are built
// once at startup and never mutated.
type Descriptor struct {
	Name     string
	Template string
	Fields   []Field
}

// ResolveEndpoint substitutes template placeholders with values from
// pathParams, in template order. Values are inserted as raw path segments:
// the registrar expects literal identifiers (domain names, numeric record
// ids), so no re-encoding happens here. A missing or empty value for a
// required placeholder fails with KindMalformedOperation before any network
// call is attempted.
func (d Descriptor) ResolveEndpoint(pathParams map[string]string) (string, error) {
	segments := strings.Split(d.Template, "/")
	resolved := make([]string, 0, len(segments))
	for _, seg := range segments {
		if !strings.HasPrefix(seg, "{") || !strings.HasSuffix(seg, "}") {
			resolved = append(resolved, seg)
			continue
		}
		name := seg[1 : len(seg)-1]
		optional := strings.HasSuffix(name, "?")
		name = strings.TrimSuffix(name, "?")

		value := pathParams[name]
		if value == "" {
			if optional {
				// optional placeholders only occur at the tail of a template
				continue
			}
			return "", &Error{
				Kind:    KindMalformedOperation,
				Op:      d.Name,
				Message: fmt.Sprintf("operation %s: missing required path parameter %q", d.Name, name),
			}
		}
		resolved = append(resolved, value)
	}
	return strings.Join(resolved, "/"), nil
}

// BuildBody assembles the operation-specific request body from the supplied
// arguments per each field's policy. Credentials are merged in later by the
// dispatch core; descriptors never declare the credential wire names.
func (d Descriptor) BuildBody(args map[string]any) map[string]any {
	body := make(map[string]any, len(d.Fields)+2)
	for _, f := range d.Fields {
		if v, ok := args[f.Arg]; ok {
			body[f.Wire] = v
			continue
		}
		if f.Policy == FieldAlways {
			body[f.Wire] = f.Default
		}
	}
	return body
}
