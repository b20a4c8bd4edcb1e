package shortcuts

import (
	"encoding/binary"
	"errors"
	"testing"
	"unicode/utf16"
)

// header assembles a shell link header with the given LinkFlags.
func header(flags uint32) []byte {
	h := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(h[0:4], HeaderSize)
	copy(h[4:20], linkCLSID)
	binary.LittleEndian.PutUint32(h[20:24], flags)
	return h
}

// netLink builds a link whose LinkInfo carries a
// CommonNetworkRelativeLink with an ANSI net name.
func netLink(netName, suffix string) []byte {
	cnrl := make([]byte, minNetLinkSize)
	cnrl = append(cnrl, netName...)
	cnrl = append(cnrl, 0)
	binary.LittleEndian.PutUint32(cnrl[0:4], uint32(len(cnrl)))
	binary.LittleEndian.PutUint32(cnrl[8:12], minNetLinkSize)

	info := make([]byte, minLinkInfoHeader)
	info = append(info, cnrl...)
	suffixOff := len(info)
	info = append(info, suffix...)
	info = append(info, 0)
	binary.LittleEndian.PutUint32(info[0:4], uint32(len(info)))
	binary.LittleEndian.PutUint32(info[4:8], minLinkInfoHeader)
	binary.LittleEndian.PutUint32(info[8:12], infoCommonNetworkRelativeLinkValid)
	binary.LittleEndian.PutUint32(info[20:24], minLinkInfoHeader)
	binary.LittleEndian.PutUint32(info[24:28], uint32(suffixOff))

	return append(header(flagHasLinkInfo), info...)
}

// localLink builds a link whose LinkInfo carries a local base path.
func localLink(base, suffix string) []byte {
	info := make([]byte, minLinkInfoHeader)
	baseOff := len(info)
	info = append(info, base...)
	info = append(info, 0)
	suffixOff := len(info)
	info = append(info, suffix...)
	info = append(info, 0)
	binary.LittleEndian.PutUint32(info[0:4], uint32(len(info)))
	binary.LittleEndian.PutUint32(info[4:8], minLinkInfoHeader)
	binary.LittleEndian.PutUint32(info[8:12], infoVolumeIDAndLocalBasePath)
	binary.LittleEndian.PutUint32(info[16:20], uint32(baseOff))
	binary.LittleEndian.PutUint32(info[24:28], uint32(suffixOff))

	return append(header(flagHasLinkInfo), info...)
}

// uniNetLink builds a network link carrying both an ANSI and a UTF-16
// net name; the offsets make the UTF-16 one authoritative.
func uniNetLink(ansiName, uniName string) []byte {
	const hdr = minNetLinkSize + 8 // base header plus the two unicode offsets
	cnrl := make([]byte, hdr)
	nameOff := len(cnrl)
	cnrl = append(cnrl, ansiName...)
	cnrl = append(cnrl, 0)
	uniOff := len(cnrl)
	for _, u := range utf16.Encode([]rune(uniName)) {
		cnrl = append(cnrl, byte(u), byte(u>>8))
	}
	cnrl = append(cnrl, 0, 0)
	binary.LittleEndian.PutUint32(cnrl[0:4], uint32(len(cnrl)))
	binary.LittleEndian.PutUint32(cnrl[8:12], uint32(nameOff))
	binary.LittleEndian.PutUint32(cnrl[20:24], uint32(uniOff))

	info := make([]byte, minLinkInfoHeader)
	info = append(info, cnrl...)
	suffixOff := len(info)
	info = append(info, 0)
	binary.LittleEndian.PutUint32(info[0:4], uint32(len(info)))
	binary.LittleEndian.PutUint32(info[4:8], minLinkInfoHeader)
	binary.LittleEndian.PutUint32(info[8:12], infoCommonNetworkRelativeLinkValid)
	binary.LittleEndian.PutUint32(info[20:24], minLinkInfoHeader)
	binary.LittleEndian.PutUint32(info[24:28], uint32(suffixOff))

	return append(header(flagHasLinkInfo), info...)
}

func TestDecode_NetworkTarget(t *testing.T) {
	link, err := Decode(netLink(`\\fileserver\projects`, ""))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if link.NetName != `\\fileserver\projects` {
		t.Errorf("NetName = %q, want %q", link.NetName, `\\fileserver\projects`)
	}
	if got := link.TargetPath(); got != `\\fileserver\projects` {
		t.Errorf("TargetPath() = %q, want %q", got, `\\fileserver\projects`)
	}
}

func TestDecode_NetworkTargetWithSuffix(t *testing.T) {
	link, err := Decode(netLink(`\\fileserver\projects`, "2024"))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got := link.TargetPath(); got != `\\fileserver\projects\2024` {
		t.Errorf("TargetPath() = %q, want %q", got, `\\fileserver\projects\2024`)
	}
}

func TestDecode_UnicodeNetName(t *testing.T) {
	link, err := Decode(uniNetLink(`\\srv\wrong`, `\\srv\überfreigabe`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if link.NetName != `\\srv\überfreigabe` {
		t.Errorf("NetName = %q, want the unicode variant", link.NetName)
	}
}

func TestDecode_LocalTarget(t *testing.T) {
	link, err := Decode(localLink(`C:\Users\dev\docs`, ""))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if link.NetName != "" {
		t.Errorf("NetName = %q, want empty for local target", link.NetName)
	}
	if got := link.TargetPath(); got != `C:\Users\dev\docs` {
		t.Errorf("TargetPath() = %q, want %q", got, `C:\Users\dev\docs`)
	}
}

func TestDecode_NoLinkInfo(t *testing.T) {
	link, err := Decode(header(0))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got := link.TargetPath(); got != "" {
		t.Errorf("TargetPath() = %q, want empty for link without path info", got)
	}
}

func TestDecode_SkipsIDList(t *testing.T) {
	full := netLink(`\\srv\share`, "")
	body := full[HeaderSize:]

	data := header(flagHasLinkTargetIDList | flagHasLinkInfo)
	data = append(data, 4, 0) // IDListSize
	data = append(data, 0xDE, 0xAD, 0xBE, 0xEF)
	data = append(data, body...)

	link, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got := link.TargetPath(); got != `\\srv\share` {
		t.Errorf("TargetPath() = %q, want %q", got, `\\srv\share`)
	}
}

func TestDecode_NotShellLink(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"too short", []byte{0x4C, 0x00, 0x00}},
		{"wrong header size", append([]byte{0x4D}, make([]byte, HeaderSize)...)},
		{"plain text", []byte("this is definitely not a shell link, just a text file padded out to header size....")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.data); !errors.Is(err, ErrNotShellLink) {
				t.Errorf("Decode() error = %v, want ErrNotShellLink", err)
			}
			if IsShellLink(tt.data) {
				t.Error("IsShellLink() = true, want false")
			}
		})
	}
}

func TestDecode_WrongCLSID(t *testing.T) {
	data := header(0)
	data[4] = 0xFF

	if _, err := Decode(data); !errors.Is(err, ErrNotShellLink) {
		t.Errorf("Decode() error = %v, want ErrNotShellLink", err)
	}
}

func TestDecode_Truncated(t *testing.T) {
	full := netLink(`\\fileserver\projects`, "docs")

	tests := []struct {
		name string
		data []byte
	}{
		{"cut inside link info header", full[:HeaderSize+8]},
		{"cut inside link info body", full[:len(full)-10]},
		{"cut at final byte", full[:len(full)-1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.data); !errors.Is(err, ErrTruncated) {
				t.Errorf("Decode() error = %v, want ErrTruncated", err)
			}
		})
	}
}

func TestDecode_UnterminatedString(t *testing.T) {
	full := netLink(`\\fileserver\projects`, "docs")

	// Drop the suffix terminator and shrink the declared LinkInfoSize to
	// match, so the failure lands in string reading rather than bounds.
	data := make([]byte, len(full)-1)
	copy(data, full)
	binary.LittleEndian.PutUint32(data[HeaderSize:HeaderSize+4], uint32(len(data)-HeaderSize))

	if _, err := Decode(data); !errors.Is(err, ErrTruncated) {
		t.Errorf("Decode() error = %v, want ErrTruncated", err)
	}
}

func TestDecode_IDListPastEnd(t *testing.T) {
	data := header(flagHasLinkTargetIDList)
	data = append(data, 0xFF, 0x7F) // declares far more bytes than present

	if _, err := Decode(data); !errors.Is(err, ErrTruncated) {
		t.Errorf("Decode() error = %v, want ErrTruncated", err)
	}
}

func TestIsShellLink(t *testing.T) {
	if !IsShellLink(header(0)) {
		t.Error("IsShellLink() = false for a valid header")
	}
	if !IsShellLink(netLink(`\\srv\share`, "")) {
		t.Error("IsShellLink() = false for a full link")
	}
}
