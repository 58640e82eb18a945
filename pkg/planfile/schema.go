package planfile

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/matzehuels/seedbed/pkg/errors"
)

//go:embed schema.json
var schemaData []byte

var schemaLoader = gojsonschema.NewBytesLoader(schemaData)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// colorFormatChecker accepts CSS hex colors such as "#4caf50".
type colorFormatChecker struct{}

// IsFormat reports whether input is a hex color string.
func (colorFormatChecker) IsFormat(input interface{}) bool {
	s, ok := input.(string)
	return ok && hexColor.MatchString(s)
}

func init() {
	gojsonschema.FormatCheckers.Add("color", colorFormatChecker{})
}

// Validate checks a decoded plan document against the plan schema.
// All violations are returned together in an [errors.FieldError].
func Validate(doc map[string]any) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "plan schema")
	}
	if result.Valid() {
		return nil
	}

	var fields []string
	for _, desc := range result.Errors() {
		// Conditional failures repeat the concrete error they wrap.
		if desc.Type() == "condition_then" || desc.Type() == "number_all_of" {
			continue
		}
		fields = append(fields, fmt.Sprintf("%s: %s", fieldPath(desc.Field()), desc.Description()))
	}
	if len(fields) == 0 {
		fields = append(fields, "document does not match the plan schema")
	}
	return &errors.FieldError{Fields: fields}
}

// fieldPath turns "beds.0.groups.1.spacing" into "beds[0].groups[1].spacing".
func fieldPath(field string) string {
	if field == "(root)" {
		return "plan"
	}
	parts := strings.Split(field, ".")
	var b strings.Builder
	for i, p := range parts {
		if isIndex(p) {
			b.WriteString("[" + p + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(p)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
