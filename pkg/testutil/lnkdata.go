package testutil

import (
	"encoding/binary"
	"strings"
)

// Shell link layout constants, mirrored here so fixtures do not depend
// on the package under test.
const (
	lnkHeaderSize     = 76
	lnkHasLinkInfo    = 0x02
	lnkInfoHeaderSize = 0x1C
	lnkNetLinkSize    = 0x14

	lnkInfoLocalBasePath = 0x01
	lnkInfoNetworkLink   = 0x02
)

var lnkCLSID = []byte{
	0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
}

// LinkData builds a minimal shell link blob whose stored target is the
// given path. UNC targets are written as a network-relative link, other
// targets as a local base path; an empty target yields a link without
// path information.
func LinkData(target string) []byte {
	data := make([]byte, lnkHeaderSize)
	binary.LittleEndian.PutUint32(data[0:4], lnkHeaderSize)
	copy(data[4:20], lnkCLSID)

	if target == "" {
		return data
	}
	binary.LittleEndian.PutUint32(data[20:24], lnkHasLinkInfo)

	var info []byte
	if strings.HasPrefix(target, `\\`) || strings.HasPrefix(target, "//") {
		info = networkLinkInfo(target)
	} else {
		info = localLinkInfo(target)
	}
	return append(data, info...)
}

// networkLinkInfo assembles a LinkInfo with a CommonNetworkRelativeLink
// holding the whole target as its net name and an empty path suffix.
func networkLinkInfo(target string) []byte {
	cnrl := make([]byte, lnkNetLinkSize)
	cnrl = append(cnrl, target...)
	cnrl = append(cnrl, 0)
	binary.LittleEndian.PutUint32(cnrl[0:4], uint32(len(cnrl)))
	binary.LittleEndian.PutUint32(cnrl[8:12], lnkNetLinkSize)

	info := make([]byte, lnkInfoHeaderSize)
	info = append(info, cnrl...)
	suffixOff := len(info)
	info = append(info, 0)

	binary.LittleEndian.PutUint32(info[0:4], uint32(len(info)))
	binary.LittleEndian.PutUint32(info[4:8], lnkInfoHeaderSize)
	binary.LittleEndian.PutUint32(info[8:12], lnkInfoNetworkLink)
	binary.LittleEndian.PutUint32(info[20:24], lnkInfoHeaderSize)
	binary.LittleEndian.PutUint32(info[24:28], uint32(suffixOff))
	return info
}

// localLinkInfo assembles a LinkInfo with a local base path and an
// empty path suffix.
func localLinkInfo(target string) []byte {
	info := make([]byte, lnkInfoHeaderSize)
	baseOff := len(info)
	info = append(info, target...)
	info = append(info, 0)
	suffixOff := len(info)
	info = append(info, 0)

	binary.LittleEndian.PutUint32(info[0:4], uint32(len(info)))
	binary.LittleEndian.PutUint32(info[4:8], lnkInfoHeaderSize)
	binary.LittleEndian.PutUint32(info[8:12], lnkInfoLocalBasePath)
	binary.LittleEndian.PutUint32(info[16:20], uint32(baseOff))
	binary.LittleEndian.PutUint32(info[24:28], uint32(suffixOff))
	return info
}
