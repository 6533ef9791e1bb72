package schedulers

// OffsetReverse prepends a reversed slice of the key (the last Offset characters,
// reversed) before the key proper, producing a variable effective key length meant
// to confuse keylength guessing.
//
// For example, key "ABCDEF" with Offset=2 produces the effective key "FEABCDEF".
type OffsetReverse struct {
	Offset int
}

// Schedule implements KeySchedule.
func (o OffsetReverse) Schedule(index, keyLength, _ int) NextKey {
	offset := o.Offset % (keyLength + 1)

	effKeyLength := keyLength + offset
	i := index % effKeyLength

	if i < offset {
		return KeyIndex(effKeyLength - i - offset - 1)
	}
	return KeyIndex(i - offset)
}
