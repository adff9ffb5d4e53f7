package glb

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"
)

const (
	glbMagic   = 0x46546C67 // "glTF"
	glbVersion = 2
	chunkJSON  = 0x4E4F534A // "JSON"
	chunkBIN   = 0x004E4942 // "BIN\0"

	headerLen      = 12
	chunkHeaderLen = 8
)

// Encode serializes the scene document and the packed payload into the
// chunked container: 12-byte header, length-prefixed JSON chunk (space
// padded to 4 bytes), length-prefixed binary chunk. The header's total
// length always equals the byte count produced.
func Encode(doc *gltf.Document, bin []byte) ([]byte, error) {
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("glb: marshal scene document: %w", err)
	}
	for len(jsonBytes)%4 != 0 {
		jsonBytes = append(jsonBytes, ' ')
	}
	if len(bin)%4 != 0 {
		return nil, fmt.Errorf("glb: binary payload length %d is not 4-byte aligned", len(bin))
	}

	total := headerLen + chunkHeaderLen + len(jsonBytes) + chunkHeaderLen + len(bin)
	buf := bytes.NewBuffer(make([]byte, 0, total))

	writeU32(buf, glbMagic)
	writeU32(buf, glbVersion)
	writeU32(buf, uint32(total))

	writeU32(buf, uint32(len(jsonBytes)))
	writeU32(buf, chunkJSON)
	buf.Write(jsonBytes)

	writeU32(buf, uint32(len(bin)))
	writeU32(buf, chunkBIN)
	buf.Write(bin)

	return buf.Bytes(), nil
}

// WriteFile encodes the container and writes it to path through a
// temporary file in the same directory, renaming only on success, so a
// failure partway through never leaves a validly-named partial output.
func WriteFile(path string, doc *gltf.Document, bin []byte) error {
	data, err := Encode(doc, bin)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("glb: create temp for %s: %w", path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("glb: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("glb: close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("glb: rename %s: %w", path, err)
	}
	return nil
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}
