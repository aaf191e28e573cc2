package list

type constError string

// ErrStaleHandle is the panic value (wrapped) when a [Handle]
// is used after its element was removed.
const ErrStaleHandle = constError("stale list handle")

func (errStr constError) Error() string { return string(errStr) }
