package adapter

// NewDefaultRegistry wires up the codecs quire ships with. The composition
// root owns the returned registry and hands it to whoever needs format
// lookup; nothing registers itself globally.
func NewDefaultRegistry() *CodecRegistry {
	return NewCodecRegistry(
		NewIpynbCodec(),
		NewQuireCodec(),
	)
}
