package errs

// Kind is the stable name tag of an error category. Its string value is
// what serialized errors carry in their "name" field.
type Kind string

const (
	KindBase         Kind = "BaseError"
	KindValidation   Kind = "ValidationError"
	KindNotFound     Kind = "NotFoundError"
	KindUnauthorized Kind = "UnauthorizedError"
	KindBusinessRule Kind = "BusinessRuleError"
	KindTechnical    Kind = "TechnicalError"
	KindTimeout      Kind = "TimeoutError"
	KindConcurrency  Kind = "ConcurrencyError"
	KindCancellation Kind = "CancellationError"
)

// Kinds lists every known kind, base first.
var Kinds = []Kind{
	KindBase,
	KindValidation,
	KindNotFound,
	KindUnauthorized,
	KindBusinessRule,
	KindTechnical,
	KindTimeout,
	KindConcurrency,
	KindCancellation,
}

func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindBase, KindValidation, KindNotFound, KindUnauthorized, KindBusinessRule,
		KindTechnical, KindTimeout, KindConcurrency, KindCancellation:
		return true
	default:
		return false
	}
}

// Parent returns the category k specializes. KindBase and unknown kinds
// have no parent.
func (k Kind) Parent() (Kind, bool) {
	switch k {
	case KindTimeout, KindCancellation:
		return KindTechnical, true
	case KindValidation, KindNotFound, KindUnauthorized, KindBusinessRule,
		KindTechnical, KindConcurrency:
		return KindBase, true
	default:
		return "", false
	}
}

// IsA reports category membership: a kind is-a itself and every ancestor.
//
//	KindTimeout.IsA(KindTechnical) // true
//	KindTimeout.IsA(KindBase)      // true
//	KindValidation.IsA(KindNotFound) // false
func (k Kind) IsA(category Kind) bool {
	if !k.Valid() {
		return false
	}
	for cur, ok := k, true; ok; cur, ok = cur.Parent() {
		if cur == category {
			return true
		}
	}
	return false
}

// ParseKind maps a serialized name tag back to a Kind.
func ParseKind(name string) (Kind, bool) {
	k := Kind(name)
	return k, k.Valid()
}
