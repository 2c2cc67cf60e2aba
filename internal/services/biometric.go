package services

// BiometricVerifier is the external capture-check collaborator. The
// platform never implements real matching; registration and the
// verification endpoints consume only the boolean result.
type BiometricVerifier interface {
	Verify(capture []byte) bool
}

// StubVerifier accepts every capture. It mirrors the behaviour of the
// face and retina endpoints, which have no enrollment template to
// compare against.
type StubVerifier struct{}

// Verify reports the capture as valid unconditionally.
func (StubVerifier) Verify(_ []byte) bool {
	return true
}
