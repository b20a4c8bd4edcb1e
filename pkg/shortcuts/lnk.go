// Package shortcuts reads Windows shell link (.lnk) files and resolves
// the link targets of entries in the network-shortcuts container.
//
// Only the subset of the shell link binary format needed to recover a
// link's target path is implemented: the fixed header and the LinkInfo
// structure. Optional string data, property stores, and the ID list are
// skipped.
//
// Layout of the parts this package reads:
//
//	Offset 0-3:   HeaderSize            (always 0x4C)
//	Offset 4-19:  LinkCLSID             (00021401-0000-0000-C000-000000000046)
//	Offset 20-23: LinkFlags             (bit 0 = HasLinkTargetIDList, bit 1 = HasLinkInfo)
//	Offset 76+:   LinkTargetIDList      (uint16 size prefix, skipped)
//	then:         LinkInfo              (offsets to volume, base path, and network link data)
//
// Within LinkInfo, a CommonNetworkRelativeLink carries the UNC net name
// of a network target; local targets carry a base path instead. Either
// may be extended by a common path suffix.
//
// Reference: [MS-SHLLINK] Shell Link Binary File Format.
package shortcuts

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf16"
)

// HeaderSize is the fixed size of the shell link header in bytes.
const HeaderSize = 76

// linkCLSID identifies a shell link file, serialized little-endian.
var linkCLSID = []byte{
	0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
}

// LinkFlags bits relevant to target extraction.
const (
	flagHasLinkTargetIDList = 0x01
	flagHasLinkInfo         = 0x02
)

// LinkInfoFlags bits.
const (
	infoVolumeIDAndLocalBasePath       = 0x01
	infoCommonNetworkRelativeLinkValid = 0x02
)

// LinkInfo headers are either exactly minLinkInfoHeader bytes or at
// least extLinkInfoHeader bytes, in which case they carry additional
// offsets to unicode string variants.
const (
	minLinkInfoHeader = 0x1C
	extLinkInfoHeader = 0x24
)

// minNetLinkSize is the smallest valid CommonNetworkRelativeLink; a
// NetNameOffset beyond it signals the presence of unicode offsets.
const minNetLinkSize = 0x14

var (
	// ErrNotShellLink is returned when the data does not carry the shell
	// link header.
	ErrNotShellLink = errors.New("not a shell link file")

	// ErrTruncated is returned when the data ends inside a structure the
	// header says should be present.
	ErrTruncated = errors.New("shell link data truncated")
)

// Link holds the target-path fields recovered from a shell link file.
type Link struct {
	// NetName is the UNC root of a network target, e.g. \\server\share.
	// Empty for local targets.
	NetName string

	// LocalBasePath is the base path of a local target. Empty for
	// network targets.
	LocalBasePath string

	// CommonSuffix extends either target form to the full path.
	CommonSuffix string
}

// TargetPath assembles the stored target path. Network targets join the
// net name and suffix with a separator; local targets append the suffix
// directly, as the format prescribes. Links without path information
// yield the empty string.
func (l *Link) TargetPath() string {
	if l.NetName != "" {
		if l.CommonSuffix != "" {
			return l.NetName + `\` + l.CommonSuffix
		}
		return l.NetName
	}
	if l.LocalBasePath != "" {
		return l.LocalBasePath + l.CommonSuffix
	}
	return ""
}

// IsShellLink reports whether data starts with a shell link header.
func IsShellLink(data []byte) bool {
	if len(data) < HeaderSize {
		return false
	}
	if binary.LittleEndian.Uint32(data[0:4]) != HeaderSize {
		return false
	}
	return bytes.Equal(data[4:20], linkCLSID)
}

// Decode parses shell link data and returns its target-path fields.
// Data without the link header yields ErrNotShellLink; data that ends
// inside a declared structure yields ErrTruncated.
func Decode(data []byte) (*Link, error) {
	if !IsShellLink(data) {
		return nil, ErrNotShellLink
	}

	flags := binary.LittleEndian.Uint32(data[20:24])
	off := HeaderSize

	if flags&flagHasLinkTargetIDList != 0 {
		if off+2 > len(data) {
			return nil, fmt.Errorf("%w: id list size", ErrTruncated)
		}
		idListSize := int(binary.LittleEndian.Uint16(data[off : off+2]))
		off += 2 + idListSize
		if off > len(data) {
			return nil, fmt.Errorf("%w: id list body", ErrTruncated)
		}
	}

	if flags&flagHasLinkInfo == 0 {
		return &Link{}, nil
	}
	return decodeLinkInfo(data, off)
}

func decodeLinkInfo(data []byte, off int) (*Link, error) {
	if off+minLinkInfoHeader > len(data) {
		return nil, fmt.Errorf("%w: link info header", ErrTruncated)
	}
	size := int(binary.LittleEndian.Uint32(data[off : off+4]))
	if size < minLinkInfoHeader || off+size > len(data) {
		return nil, fmt.Errorf("%w: link info body", ErrTruncated)
	}
	info := data[off : off+size]

	headerSize := int(binary.LittleEndian.Uint32(info[4:8]))
	if headerSize < minLinkInfoHeader || headerSize > size {
		return nil, fmt.Errorf("%w: link info header size", ErrTruncated)
	}
	infoFlags := binary.LittleEndian.Uint32(info[8:12])
	unicode := headerSize >= extLinkInfoHeader

	link := &Link{}

	// A link to a target on a mapped drive can carry both a local base
	// path and a network-relative link; the network form is the one that
	// names the share, so it wins.
	switch {
	case infoFlags&infoCommonNetworkRelativeLinkValid != 0:
		netOff := int(binary.LittleEndian.Uint32(info[20:24]))
		netName, err := decodeNetName(info, netOff)
		if err != nil {
			return nil, err
		}
		link.NetName = netName
	case infoFlags&infoVolumeIDAndLocalBasePath != 0:
		base, err := basePathString(info, unicode)
		if err != nil {
			return nil, err
		}
		link.LocalBasePath = base
	default:
		return link, nil
	}

	suffix, err := suffixString(info, unicode)
	if err != nil {
		return nil, err
	}
	link.CommonSuffix = suffix
	return link, nil
}

// decodeNetName reads the net name out of a CommonNetworkRelativeLink
// located at netOff within the LinkInfo buffer.
func decodeNetName(info []byte, netOff int) (string, error) {
	if netOff <= 0 || netOff+minNetLinkSize > len(info) {
		return "", fmt.Errorf("%w: network link header", ErrTruncated)
	}
	net := info[netOff:]
	size := int(binary.LittleEndian.Uint32(net[0:4]))
	if size < minNetLinkSize || netOff+size > len(info) {
		return "", fmt.Errorf("%w: network link body", ErrTruncated)
	}

	nameOff := int(binary.LittleEndian.Uint32(net[8:12]))
	if nameOff > minNetLinkSize {
		// Offsets past the base header mean the unicode variants exist.
		if size < minNetLinkSize+4 {
			return "", fmt.Errorf("%w: network link unicode offsets", ErrTruncated)
		}
		uniOff := int(binary.LittleEndian.Uint32(net[20:24]))
		return utf16String(net[:size], uniOff)
	}
	return ansiString(net[:size], nameOff)
}

// basePathString reads the LocalBasePath, preferring the unicode
// variant when the LinkInfo header carries one.
func basePathString(info []byte, unicode bool) (string, error) {
	if unicode {
		uniOff := int(binary.LittleEndian.Uint32(info[28:32]))
		if uniOff != 0 {
			return utf16String(info, uniOff)
		}
	}
	baseOff := int(binary.LittleEndian.Uint32(info[16:20]))
	if baseOff == 0 {
		return "", nil
	}
	return ansiString(info, baseOff)
}

// suffixString reads the CommonPathSuffix, preferring the unicode
// variant when the LinkInfo header carries one.
func suffixString(info []byte, unicode bool) (string, error) {
	if unicode {
		uniOff := int(binary.LittleEndian.Uint32(info[32:36]))
		if uniOff != 0 {
			return utf16String(info, uniOff)
		}
	}
	suffOff := int(binary.LittleEndian.Uint32(info[24:28]))
	if suffOff == 0 {
		return "", nil
	}
	return ansiString(info, suffOff)
}

// ansiString reads a NUL-terminated single-byte string at off.
func ansiString(b []byte, off int) (string, error) {
	if off < 0 || off >= len(b) {
		return "", fmt.Errorf("%w: string offset out of range", ErrTruncated)
	}
	end := bytes.IndexByte(b[off:], 0)
	if end < 0 {
		return "", fmt.Errorf("%w: unterminated string", ErrTruncated)
	}
	return string(b[off : off+end]), nil
}

// utf16String reads a NUL-terminated UTF-16LE string at off.
func utf16String(b []byte, off int) (string, error) {
	if off < 0 || off >= len(b) {
		return "", fmt.Errorf("%w: string offset out of range", ErrTruncated)
	}
	var units []uint16
	for i := off; ; i += 2 {
		if i+2 > len(b) {
			return "", fmt.Errorf("%w: unterminated string", ErrTruncated)
		}
		u := binary.LittleEndian.Uint16(b[i : i+2])
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	return string(utf16.Decode(units)), nil
}
