package notification

// Builder composes a base notification with decorators in call order.
//
// The first construction error is kept and returned by Build; later calls
// become no-ops once an error has been recorded.
type Builder struct {
	current Notification
	err     error
}

// NewBuilder starts a chain from a simple notification with the given text
func NewBuilder(text string) *Builder {
	return &Builder{current: NewSimple(text)}
}

// From starts a chain from an existing notification
func From(n Notification) *Builder {
	b := &Builder{current: n}
	if IsNil(n) {
		b.err = ErrNilNotification
	}
	return b
}

// WithTimestamp wraps the current chain in a TimestampDecorator
func (b *Builder) WithTimestamp(opts ...TimestampOption) *Builder {
	if b.err != nil {
		return b
	}
	td, err := NewTimestampDecorator(b.current, opts...)
	if err != nil {
		b.err = err
		return b
	}
	b.current = td
	return b
}

// WithSignature wraps the current chain in a SignatureDecorator
func (b *Builder) WithSignature(signature string) *Builder {
	if b.err != nil {
		return b
	}
	sd, err := NewSignatureDecorator(b.current, signature)
	if err != nil {
		b.err = err
		return b
	}
	b.current = sd
	return b
}

// Build returns the composed notification
func (b *Builder) Build() (Notification, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.current, nil
}
