package fmindex

import (
	"bufio"
	"encoding/binary"
	"io"
)

// On-disk format (spec section 4.6): magic + version, n, k, sample_rate,
// primary, C (k words), marked (n bits, packed), occ (ceil(n/s) x k words),
// locate (length-prefixed array of (word,word) pairs), B (n bytes). All
// integers little-endian, fixed width at save time. Grounded on
// flanglet-kanzi-go's encoding/binary-based header writers
// (v2/internal/Magic.go); no compression layer, since the index is a format
// contract and must round-trip bit-identically (see DESIGN.md).
const (
	formatMagic   uint32 = 0x464d4958 // "FMIX"
	formatVersion uint32 = 1
)

// Save writes idx in the format above. The caller's RankMap is not
// persisted: Load requires the caller to supply an equivalent RankMap.
func (idx *Index) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if err := writeUint32(bw, formatMagic); err != nil {
		return err
	}
	if err := writeUint32(bw, formatVersion); err != nil {
		return err
	}
	if err := writeUint64(bw, uint64(idx.n)); err != nil {
		return err
	}
	if err := writeUint64(bw, uint64(len(idx.c))); err != nil {
		return err
	}
	if err := writeUint64(bw, uint64(idx.sampleRate)); err != nil {
		return err
	}
	if err := writeUint64(bw, uint64(idx.primary)); err != nil {
		return err
	}
	for _, v := range idx.c {
		if err := writeUint64(bw, v); err != nil {
			return err
		}
	}
	if err := writeBits(bw, idx.marked); err != nil {
		return err
	}
	for _, row := range idx.occ {
		for _, v := range row {
			if err := writeUint64(bw, v); err != nil {
				return err
			}
		}
	}
	if err := writeUint64(bw, uint64(len(idx.locate))); err != nil {
		return err
	}
	for _, e := range idx.locate {
		if err := writeUint64(bw, uint64(e.bwtPos)); err != nil {
			return err
		}
		if err := writeUint64(bw, uint64(e.textPos)); err != nil {
			return err
		}
	}
	if _, err := bw.Write(idx.bwt); err != nil {
		return wrapErr(IoError, "writing bwt bytes", err)
	}
	if err := bw.Flush(); err != nil {
		return wrapErr(IoError, "flushing writer", err)
	}
	return nil
}

// Load reads an index previously written by Save. ranks must be an
// equivalent RankMap to the one used at build time (spec section 6: the
// RankMap itself is not part of the persisted contract).
func Load(r io.Reader, ranks RankMap) (*Index, error) {
	br := bufio.NewReader(r)

	magic, err := readUint32(br)
	if err != nil {
		return nil, err
	}
	if magic != formatMagic {
		return nil, newErr(CorruptIndex, "bad magic number")
	}
	version, err := readUint32(br)
	if err != nil {
		return nil, err
	}
	if version != formatVersion {
		return nil, newErr(CorruptIndex, "unsupported format version")
	}
	n64, err := readUint64(br)
	if err != nil {
		return nil, err
	}
	k64, err := readUint64(br)
	if err != nil {
		return nil, err
	}
	sampleRate64, err := readUint64(br)
	if err != nil {
		return nil, err
	}
	primary64, err := readUint64(br)
	if err != nil {
		return nil, err
	}
	n, k, sampleRate, primary := int(n64), int(k64), int(sampleRate64), int(primary64)
	if n < 2 || k <= 0 || !isPowerOfTwo(sampleRate) || primary < 0 || primary >= n {
		return nil, newErr(CorruptIndex, "invalid header field")
	}
	if int(ranks.Size()) != k {
		return nil, newErr(CorruptIndex, "rank map size does not match persisted alphabet size")
	}

	c := make([]uint64, k)
	for i := range c {
		if c[i], err = readUint64(br); err != nil {
			return nil, err
		}
	}

	marked, err := readBits(br, n)
	if err != nil {
		return nil, err
	}

	numCheckpoints := (n + sampleRate - 1) / sampleRate
	occ := make([][]uint64, numCheckpoints)
	for i := range occ {
		row := make([]uint64, k)
		for j := range row {
			if row[j], err = readUint64(br); err != nil {
				return nil, err
			}
		}
		occ[i] = row
	}

	numLocate64, err := readUint64(br)
	if err != nil {
		return nil, err
	}
	locate := make([]locateEntry, numLocate64)
	prevBWT := int64(-1)
	for i := range locate {
		bwtPos, err := readUint64(br)
		if err != nil {
			return nil, err
		}
		textPos, err := readUint64(br)
		if err != nil {
			return nil, err
		}
		if int64(bwtPos) <= prevBWT {
			return nil, newErr(CorruptIndex, "locate table is not strictly increasing by bwt position")
		}
		prevBWT = int64(bwtPos)
		locate[i] = locateEntry{bwtPos: int64(bwtPos), textPos: int64(textPos)}
	}

	bwt := make([]byte, n)
	if _, err := io.ReadFull(br, bwt); err != nil {
		return nil, wrapErr(IoError, "reading bwt bytes", err)
	}

	return &Index{
		ranks:      ranks,
		n:          n,
		sampleRate: sampleRate,
		primary:    primary,
		bwt:        bwt,
		c:          c,
		occ:        occ,
		marked:     marked,
		locate:     locate,
	}, nil
}

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return wrapErr(IoError, "writing uint32", err)
	}
	return nil
}

func writeUint64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return wrapErr(IoError, "writing uint64", err)
	}
	return nil
}

func readUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, wrapErr(IoError, "reading uint32", err)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func readUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, wrapErr(IoError, "reading uint64", err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// writeBits packs marked into bytes, 8 bits per byte, LSB first.
func writeBits(w io.Writer, marked []bool) error {
	buf := make([]byte, (len(marked)+7)/8)
	for i, b := range marked {
		if b {
			buf[i/8] |= 1 << uint(i%8)
		}
	}
	if _, err := w.Write(buf); err != nil {
		return wrapErr(IoError, "writing marked bit-vector", err)
	}
	return nil
}

func readBits(r io.Reader, n int) ([]bool, error) {
	buf := make([]byte, (n+7)/8)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, wrapErr(IoError, "reading marked bit-vector", err)
	}
	marked := make([]bool, n)
	for i := range marked {
		marked[i] = buf[i/8]&(1<<uint(i%8)) != 0
	}
	return marked, nil
}
