// seehuhn.de/go/dxf - a library for reading and writing DXF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dxf

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"image"
	"io"
	"strings"

	"golang.org/x/image/bmp"
)

// A Thumbnail is the preview image of a drawing, available from AC1015
// files onwards.  The file stores a Windows bitmap without its 14 byte
// file header, hex-encoded in chunks of 310-coded tags.
type Thumbnail struct {
	// Data is the bitmap, starting at the BITMAPINFOHEADER.
	Data []byte
}

// thumbnailChunk is the number of bytes encoded per 310-coded tag.
const thumbnailChunk = 128

// NewThumbnail encodes img as a drawing preview.
func NewThumbnail(img image.Image) (*Thumbnail, error) {
	buf := &bytes.Buffer{}
	err := bmp.Encode(buf, img)
	if err != nil {
		return nil, err
	}
	// strip the BITMAPFILEHEADER
	return &Thumbnail{Data: buf.Bytes()[14:]}, nil
}

// Image decodes the preview into an image.  The BITMAPFILEHEADER which
// the file format omits is reconstructed first.
func (t *Thumbnail) Image() (image.Image, error) {
	if len(t.Data) < 4 {
		return nil, &MalformedTagError{Err: fmt.Errorf("thumbnail too short")}
	}

	// The pixel data offset is the file header (14 bytes), the info
	// header (its length is its own first word) and the color table.
	infoLen := binary.LittleEndian.Uint32(t.Data)
	bitCount := uint32(0)
	if len(t.Data) >= 16 {
		bitCount = uint32(binary.LittleEndian.Uint16(t.Data[14:]))
	}
	paletteLen := uint32(0)
	if bitCount > 0 && bitCount <= 8 {
		paletteLen = 4 * (1 << bitCount)
	}
	offset := 14 + infoLen + paletteLen

	header := make([]byte, 14)
	header[0] = 'B'
	header[1] = 'M'
	binary.LittleEndian.PutUint32(header[2:], uint32(14+len(t.Data)))
	binary.LittleEndian.PutUint32(header[10:], offset)

	return bmp.Decode(io.MultiReader(bytes.NewReader(header), bytes.NewReader(t.Data)))
}

// decodeThumbnail reads the body of the THUMBNAILIMAGE section, up to but
// not including the closing ENDSEC tag.  The byte count stored in the
// file is not trusted: a mismatch with the chunk data is reported as a
// diagnostic and the chunk data wins.
func decodeThumbnail(s *Scanner, diags *[]Diagnostic) (*Thumbnail, error) {
	var data []byte
	declared := -1

	for {
		tag, err := s.NextTag()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if tag.IsEntry() {
			s.PushBack(tag)
			break
		}
		line := s.Line() - 1

		switch tag.Code {
		case 90:
			count := FieldSpec{Kind: KindInt32}
			if n, err := count.decodeScalar(tag.Value); err == nil {
				declared = int(n.(int32))
			} else {
				*diags = append(*diags, Diagnostic{
					Entity: "THUMBNAILIMAGE", Code: tag.Code, Line: line,
					Msg: err.Error(),
				})
			}
		case 310:
			chunk, err := hex.DecodeString(strings.TrimSpace(tag.Value))
			if err != nil {
				*diags = append(*diags, Diagnostic{
					Entity: "THUMBNAILIMAGE", Code: tag.Code, Line: line,
					Msg: "invalid hex data",
				})
				continue
			}
			data = append(data, chunk...)
		default:
			*diags = append(*diags, Diagnostic{
				Entity: "THUMBNAILIMAGE", Code: tag.Code, Line: line,
				Msg: "unknown tag",
			})
		}
	}

	if declared >= 0 && declared != len(data) {
		*diags = append(*diags, Diagnostic{
			Entity: "THUMBNAILIMAGE", Code: 90, Line: s.Line(),
			Msg: fmt.Sprintf("byte count %d does not match %d bytes of data",
				declared, len(data)),
		})
	}
	return &Thumbnail{Data: data}, nil
}

// encodeThumbnail writes the body of the THUMBNAILIMAGE section.  The
// byte count always equals the sum of the chunk lengths.
func encodeThumbnail(w *TagWriter, t *Thumbnail) error {
	if err := w.WriteInt(90, int64(len(t.Data))); err != nil {
		return err
	}
	for off := 0; off < len(t.Data); off += thumbnailChunk {
		end := off + thumbnailChunk
		if end > len(t.Data) {
			end = len(t.Data)
		}
		err := w.WriteTag(310, strings.ToUpper(hex.EncodeToString(t.Data[off:end])))
		if err != nil {
			return err
		}
	}
	return nil
}
