package enums

// CheckoutState tracks where the checkout flow currently is. There is no
// terminal state: success discards the cart and failure returns to editing.
type CheckoutState string

const (
	CheckoutStateEditing    CheckoutState = "editing"
	CheckoutStateSubmitting CheckoutState = "submitting"
)

// String implements fmt.Stringer.
func (c CheckoutState) String() string {
	return string(c)
}
