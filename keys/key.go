package keys

import (
	"regexp"
	"strings"

	"github.com/erraggy/oaswire/internal/httputil"
	"github.com/erraggy/oaswire/oaserrors"
)

// Pattern identifies the grammar a Key is validated against.
type Pattern int

const (
	// ComponentName keys name reusable components and security schemes: ^[A-Za-z0-9._-]+$
	ComponentName Pattern = iota + 1
	// PathTemplate keys are relative endpoint paths and must begin with "/".
	PathTemplate
	// StatusCode keys are response codes matching [1-5](XX|[0-9]{2}).
	StatusCode
	// Expression keys are callback runtime expressions; any non-empty string.
	Expression
	// PropertyName keys name schema properties; any non-empty string.
	PropertyName
)

var componentNameRegex = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// String returns the pattern name used in error messages.
func (p Pattern) String() string {
	switch p {
	case ComponentName:
		return "componentName"
	case PathTemplate:
		return "pathTemplate"
	case StatusCode:
		return "statusCode"
	case Expression:
		return "expression"
	case PropertyName:
		return "propertyName"
	default:
		return "unknown"
	}
}

// grammar returns the human readable rule reported when a key is rejected.
func (p Pattern) grammar() string {
	switch p {
	case ComponentName:
		return "must match ^[A-Za-z0-9._-]+$"
	case PathTemplate:
		return `must begin with "/"`
	case StatusCode:
		return "must match [1-5](XX|[0-9]{2})"
	case Expression, PropertyName:
		return "must not be empty"
	default:
		return "unknown key pattern"
	}
}

// Match reports whether raw fully matches the grammar of p.
func (p Pattern) Match(raw string) bool {
	switch p {
	case ComponentName:
		return componentNameRegex.MatchString(raw)
	case PathTemplate:
		return strings.HasPrefix(raw, "/")
	case StatusCode:
		return httputil.IsStatusCodeKey(raw)
	case Expression, PropertyName:
		return raw != ""
	default:
		return false
	}
}

// Key is a string that is known to match its Pattern.
// The zero Key is not valid; obtain keys from New.
type Key struct {
	raw     string
	pattern Pattern
}

// New validates raw against pattern.
// It returns an *oaserrors.InvalidKeyError when raw does not fully match.
func New(raw string, pattern Pattern) (Key, error) {
	if !pattern.Match(raw) {
		return Key{}, &oaserrors.InvalidKeyError{
			Key:     raw,
			Pattern: pattern.String(),
			Message: pattern.grammar(),
		}
	}
	return Key{raw: raw, pattern: pattern}, nil
}

// MustNew is like New but panics if raw is invalid.
// It simplifies initialization of static keys.
func MustNew(raw string, pattern Pattern) Key {
	k, err := New(raw, pattern)
	if err != nil {
		panic("keys: " + err.Error())
	}
	return k
}

// String returns the raw key.
func (k Key) String() string { return k.raw }

// Pattern returns the grammar k was validated against.
func (k Key) Pattern() Pattern { return k.pattern }

// IsZero reports whether k was never constructed.
func (k Key) IsZero() bool { return k.pattern == 0 }

// Equal compares keys by their raw string.
func (k Key) Equal(other Key) bool { return k.raw == other.raw }
