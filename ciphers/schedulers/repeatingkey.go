package schedulers

// RepeatingKey cycles through the key from start to finish, repeating indefinitely.
//
// Example with key "HEADCRAB" against plaintext "RISE AND SHINE MISTER FREEMAN":
//
//	Plaintext:   RISE AND SHINE MISTER FREEMAN
//	Shifted by:  HEADCRABHEADCRABHEADCRABHEADC
type RepeatingKey struct{}

// Schedule implements KeySchedule.
func (RepeatingKey) Schedule(index, keyLength, _ int) NextKey {
	return KeyIndex(index % keyLength)
}
