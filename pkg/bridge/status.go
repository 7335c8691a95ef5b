// Package bridge is the externally callable surface of the signer. Every
// call resolves to an integer status: non-negative on success, one of the
// negative codes below on failure. Internal faults are contained here and
// never propagate to the caller.
package bridge

// Status codes returned by SignTransaction. A non-negative result is the
// number of bytes written to the output buffer.
const (
	// StatusOK indicates success
	StatusOK = 0
	// StatusKeyFailure indicates missing password configuration or a
	// load/derive/decrypt failure
	StatusKeyFailure = -1
	// StatusSignFailure indicates signature computation failed
	StatusSignFailure = -2
	// StatusBufferTooSmall indicates the signed transaction does not fit the
	// caller's buffer; the buffer is left untouched
	StatusBufferTooSmall = -3
	// StatusBadInput indicates a malformed input encoding or field
	StatusBadInput = -4
	// StatusInternalFault indicates an unanticipated runtime fault contained
	// at the boundary
	StatusInternalFault = -5
)

// Status codes returned by StoreNewKey.
const (
	// StatusStoreBadIdentifier indicates a bad identifier encoding
	StatusStoreBadIdentifier = -11
	// StatusStoreBadPassword indicates a bad password encoding
	StatusStoreBadPassword = -12
	// StatusStoreEncryptFailure indicates key generation or encryption
	// failed
	StatusStoreEncryptFailure = -13
	// StatusStoreSerializeFailure indicates the record could not be
	// serialized
	StatusStoreSerializeFailure = -14
	// StatusStorePathFailure indicates the record directory could not be
	// resolved
	StatusStorePathFailure = -15
	// StatusStoreExists indicates the identifier already has a record
	StatusStoreExists = -16
	// StatusStoreWriteFailure indicates the record could not be written
	StatusStoreWriteFailure = -17
)
