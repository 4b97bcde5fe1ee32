package config

// DumpLayout describes how a bit sequence splits into dump table rows.
// Only whole bytes are dumped; TrailingBits are left over.
type DumpLayout struct {
	NumRows         uint64
	RowNumBytes     uint64
	LastRowNumBytes uint64
	TrailingBits    uint64
}

func DeriveDumpLayout(cfg Config, numBits uint64) DumpLayout {
	rowNumBytes := uint64(cfg.DumpWidth)
	numBytes := numBits / 8
	numRows := numBytes / rowNumBytes

	lastRowNumBytes := rowNumBytes
	remainder := numBytes % rowNumBytes
	if remainder > 0 {
		numRows++
		lastRowNumBytes = remainder
	}
	if numRows == 0 {
		lastRowNumBytes = 0
	}

	return DumpLayout{
		NumRows:         numRows,
		RowNumBytes:     rowNumBytes,
		LastRowNumBytes: lastRowNumBytes,
		TrailingBits:    numBits % 8,
	}
}
