// Copyright 2019 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/go-air/kcut/aig"
)

// Errors related to IO and formatting
var (
	PrematureEOF       = errors.New("premature EOF")
	UnexpectedChar     = errors.New("unexpected char")
	BadHeader          = errors.New("bad header")
	BinaryMismatch     = errors.New("binary mismatch")
	LitOOB             = errors.New("literal out of bounds")
	BadDeltaEncoding   = errors.New("bad delta encoding")
	SignedInput        = errors.New("input is negated")
	SignedAnd          = errors.New("and gate def is negated")
	Latches            = errors.New("sequential elements not supported")
	Unsupported        = errors.New("aiger 1.9 property sections not supported")
	CombLoop           = errors.New("combinational logic has a loop")
	AndMultiplyDefined = errors.New("and gate multiply defined")
	UndefinedLit       = errors.New("literal not defined")
)

// T couples a combinational graph with the primary input and output
// labeling read from or written to an AIGER file.  Outputs are views
// onto graph literals; they own no nodes.
type T struct {
	*aig.Graph
	Inputs  []aig.Lit
	Outputs []aig.Lit
}

// MakeFor makes an aiger object for a graph with outputs ms.  The
// graph is the backing store, no copy is made.
func MakeFor(g *aig.Graph, ms ...aig.Lit) *T {
	t := &T{Graph: g}
	for i := 1; i < g.Len(); i++ {
		m := g.At(i)
		if g.Kind(m) == aig.Input {
			t.Inputs = append(t.Inputs, m)
		}
	}
	t.Outputs = append(t.Outputs, ms...)
	return t
}

// Read reads a combinational AIGER file, ascii or binary as
// announced by the header tag.
func Read(r io.Reader) (*T, error) {
	br := bufReader(r)
	tag, err := br.Peek(3)
	if err != nil {
		return nil, PrematureEOF
	}
	switch string(tag) {
	case "aag":
		return ReadAscii(br)
	case "aig":
		return ReadBinary(br)
	}
	return nil, BadHeader
}

// ReadAscii reads an ascii coded combinational AIGER file.  It
// returns a possibly nil aiger object paired with a possibly nil
// error describing the underlying problem.
func ReadAscii(r io.Reader) (*T, error) {
	br := bufReader(r)
	hdr, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if hdr.binary {
		return nil, BinaryMismatch
	}
	rd := makeReader(hdr)
	if err := rd.readAsciiInputs(hdr, br); err != nil {
		return nil, err
	}
	if err := rd.readOutputs(hdr, br); err != nil {
		return nil, err
	}
	if err := rd.readAsciiAnds(hdr, br); err != nil {
		return nil, err
	}
	if err := drainSymsAndComments(br); err != nil {
		return nil, err
	}
	if err := rd.commit(); err != nil {
		return nil, err
	}
	return rd.T, nil
}

// ReadBinary reads a binary coded combinational AIGER file.  It
// returns a possibly nil aiger object paired with a possibly nil
// error describing the underlying problem.
func ReadBinary(r io.Reader) (*T, error) {
	br := bufReader(r)
	hdr, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if !hdr.binary {
		return nil, BinaryMismatch
	}
	rd := makeReader(hdr)
	var i uint
	for i = 0; i < hdr.in; i++ {
		m := rd.Graph.NewIn()
		rd.Inputs = append(rd.Inputs, m)
		rd.mapLit((i+1)*2, m)
	}
	if err := rd.readOutputs(hdr, br); err != nil {
		return nil, err
	}
	if err := rd.readBinaryAnds(hdr, br); err != nil {
		return nil, err
	}
	if err := drainSymsAndComments(br); err != nil {
		return nil, err
	}
	if err := rd.commit(); err != nil {
		return nil, err
	}
	return rd.T, nil
}

// WriteAscii writes t in the ascii AIGER format.  Gates come out in
// topological order, which is the graph's creation order.
func (t *T) WriteAscii(w io.Writer) error {
	bw := bufio.NewWriter(w)
	t.makeHeader(false).write(bw)
	ids := t.fileIDs()
	for _, m := range t.Inputs {
		fmt.Fprintf(bw, "%d\n", forLit(ids, m))
	}
	for _, m := range t.Outputs {
		fmt.Fprintf(bw, "%d\n", forLit(ids, m))
	}
	for i := 0; i < t.Len(); i++ {
		m := t.At(i)
		a, b, ok := t.Ins(m)
		if !ok {
			continue
		}
		c0, c1 := forLit(ids, a), forLit(ids, b)
		if c0 < c1 {
			c0, c1 = c1, c0
		}
		fmt.Fprintf(bw, "%d %d %d\n", forLit(ids, m), c0, c1)
	}
	writeComment(bw)
	return bw.Flush()
}

// WriteBinary writes t in the binary AIGER format.
func (t *T) WriteBinary(w io.Writer) error {
	bw := bufio.NewWriter(w)
	t.makeHeader(true).write(bw)
	ids := t.fileIDs()
	for _, m := range t.Outputs {
		fmt.Fprintf(bw, "%d\n", forLit(ids, m))
	}
	for i := 0; i < t.Len(); i++ {
		m := t.At(i)
		a, b, ok := t.Ins(m)
		if !ok {
			continue
		}
		lhs := forLit(ids, m)
		c0, c1 := forLit(ids, a), forLit(ids, b)
		if c0 < c1 {
			c0, c1 = c1, c0
		}
		if err := write7(bw, lhs-c0); err != nil {
			return err
		}
		if err := write7(bw, c0-c1); err != nil {
			return err
		}
	}
	writeComment(bw)
	return bw.Flush()
}

// fileIDs maps graph variables to file literals: the constant gets 0,
// then inputs, then gates, each block in creation order.  Fanins
// always precede their gate, so all deltas in the binary coding are
// positive.
func (t *T) fileIDs() []uint {
	ids := make([]uint, t.Len())
	id := uint(2)
	for i := 0; i < t.Len(); i++ {
		if t.Kind(t.At(i)) == aig.Input {
			ids[i] = id
			id += 2
		}
	}
	for i := 0; i < t.Len(); i++ {
		if t.Kind(t.At(i)) == aig.And {
			ids[i] = id
			id += 2
		}
	}
	return ids
}

func forLit(ids []uint, m aig.Lit) uint {
	u := ids[m.Var()]
	if !m.IsPos() {
		u |= 1
	}
	return u
}

// writes a trailing comment saying that kcut wrote the file
func writeComment(w *bufio.Writer) {
	w.WriteString("c\ncombinational aiger file created by kcut\n")
}

// data for file ands -- kept aside to verify comb loops and multiple
// definitions before committing gates to the graph.
type fileAnd struct {
	c0, c1  uint
	defined bool
	color   byte
}

type reader struct {
	*T
	// litMap resolves the positive file literal of each file var to a
	// graph literal.  It holds literals, not variables: a file gate
	// can simplify to a complemented literal (true and !x is !x), and
	// the complement must survive into whatever references the gate.
	litMap []aig.Lit
	mapped []bool
	outs   []uint // file literals, resolved in commit
	ands   []fileAnd
}

func makeReader(hdr *header) *reader {
	rd := &reader{
		T:      &T{Graph: aig.NewCap(int(hdr.max) + 1)},
		litMap: make([]aig.Lit, hdr.max+1),
		mapped: make([]bool, hdr.max+1),
		outs:   make([]uint, 0, hdr.out),
	}
	rd.mapped[0] = true // file var 0 is the constant, as is graph var 0
	return rd
}

// fileLit is always the positive literal of its file var
func (rd *reader) mapLit(fileLit uint, m aig.Lit) {
	rd.litMap[fileLit>>1] = m
	rd.mapped[fileLit>>1] = true
}

func (rd *reader) litFor(fileLit uint) (aig.Lit, bool) {
	v := fileLit >> 1
	if v >= uint(len(rd.litMap)) || !rd.mapped[v] {
		return 0, false
	}
	m := rd.litMap[v]
	if fileLit&1 != 0 {
		m = m.Not()
	}
	return m, true
}

// once all ands are translated, outputs can be resolved against the
// file literal map.
func (rd *reader) commit() error {
	for _, u := range rd.outs {
		m, ok := rd.litFor(u)
		if !ok {
			return UndefinedLit
		}
		rd.Outputs = append(rd.Outputs, m)
	}
	return nil
}

func (rd *reader) readAsciiInputs(hdr *header, r *bufio.Reader) error {
	var i uint
	for i = 0; i < hdr.in; i++ {
		u, err := readUint(r)
		if err != nil {
			return err
		}
		if u == 0 || u > hdr.max*2+1 {
			return LitOOB
		}
		if u&1 != 0 {
			return SignedInput
		}
		if rd.mapped[u>>1] {
			return AndMultiplyDefined
		}
		m := rd.Graph.NewIn()
		rd.Inputs = append(rd.Inputs, m)
		rd.mapLit(u, m)
		if err := readNL(r); err != nil {
			return err
		}
	}
	return nil
}

func (rd *reader) readOutputs(hdr *header, r *bufio.Reader) error {
	var i uint
	for i = 0; i < hdr.out; i++ {
		u, err := readUint(r)
		if err != nil {
			return err
		}
		if u > hdr.max*2+1 {
			return LitOOB
		}
		rd.outs = append(rd.outs, u)
		if err := readNL(r); err != nil {
			return err
		}
	}
	return nil
}

// ascii gate definitions may come in any order; they are collected
// first and committed by a DFS that also detects loops.
func (rd *reader) readAsciiAnds(hdr *header, r *bufio.Reader) error {
	rd.ands = make([]fileAnd, hdr.max+1)
	var i uint
	for i = 0; i < hdr.and; i++ {
		g, err := readUint(r)
		if err != nil {
			return err
		}
		if g > hdr.max*2+1 {
			return LitOOB
		}
		if g&1 != 0 {
			return SignedAnd
		}
		if err := readSP(r); err != nil {
			return err
		}
		c0, err := readUint(r)
		if err != nil {
			return err
		}
		if c0 > hdr.max*2+1 {
			return LitOOB
		}
		if err := readSP(r); err != nil {
			return err
		}
		c1, err := readUint(r)
		if err != nil {
			return err
		}
		if c1 > hdr.max*2+1 {
			return LitOOB
		}
		if err := readNL(r); err != nil {
			return err
		}
		aa := &rd.ands[g>>1]
		if aa.defined || rd.mapped[g>>1] {
			return AndMultiplyDefined
		}
		aa.defined = true
		aa.c0 = c0
		aa.c1 = c1
	}
	for v := range rd.ands {
		if rd.ands[v].defined && !rd.mapped[v] {
			if err := rd.mapAndsRec(uint(v)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (rd *reader) mapAndsRec(v uint) error {
	aa := &rd.ands[v]
	switch aa.color {
	case 1:
		return CombLoop
	case 2:
		return nil
	}
	aa.color = 1
	for _, c := range [2]uint{aa.c0, aa.c1} {
		cv := c >> 1
		if rd.mapped[cv] {
			continue
		}
		if !rd.ands[cv].defined {
			return UndefinedLit
		}
		if err := rd.mapAndsRec(cv); err != nil {
			return err
		}
	}
	m0, _ := rd.litFor(aa.c0)
	m1, _ := rd.litFor(aa.c1)
	m, err := rd.Graph.And(m0, m1)
	if err != nil {
		return err
	}
	rd.mapLit(v*2, m)
	aa.color = 2
	return nil
}

// binary gate definitions are delta coded against consecutive
// left-hand sides, so they are committed as they are read.
func (rd *reader) readBinaryAnds(hdr *header, r *bufio.Reader) error {
	id := (hdr.in + 1) * 2
	var i uint
	for i = 0; i < hdr.and; i++ {
		delta0, err := read7(r)
		if err != nil {
			return err
		}
		if delta0 > id {
			return BadDeltaEncoding
		}
		c0 := id - delta0
		delta1, err := read7(r)
		if err != nil {
			return err
		}
		if delta1 > c0 {
			return BadDeltaEncoding
		}
		c1 := c0 - delta1
		m0, ok0 := rd.litFor(c0)
		m1, ok1 := rd.litFor(c1)
		if !ok0 || !ok1 {
			return UndefinedLit
		}
		m, err := rd.Graph.And(m1, m0)
		if err != nil {
			return err
		}
		rd.mapLit(id, m)
		id += 2
	}
	return nil
}

// header for the combinational subset of AIGER
type header struct {
	binary bool
	max    uint
	in     uint
	latch  uint
	out    uint
	and    uint
}

func (h *header) write(w *bufio.Writer) {
	if h.binary {
		w.WriteString("aig ")
	} else {
		w.WriteString("aag ")
	}
	fmt.Fprintf(w, "%d %d %d %d %d\n", h.max, h.in, h.latch, h.out, h.and)
}

func (t *T) makeHeader(binary bool) *header {
	nAnd := uint(0)
	for i := 0; i < t.Len(); i++ {
		if t.Kind(t.At(i)) == aig.And {
			nAnd++
		}
	}
	return &header{
		binary: binary,
		max:    uint(t.Len() - 1),
		in:     uint(len(t.Inputs)),
		out:    uint(len(t.Outputs)),
		and:    nAnd,
	}
}

// read the header, allowing version 1 style files (M I L O A) and
// rejecting anything sequential
func readHeader(r *bufio.Reader) (*header, error) {
	buf := make([]byte, 0, 3)
	buf, err := readNonWS(r, buf)
	if err != nil {
		return nil, err
	}
	h := &header{}
	switch string(buf) {
	case "aag":
	case "aig":
		h.binary = true
	default:
		return nil, BadHeader
	}
	var counts [9]uint
	n := 0
	for {
		b, e := r.ReadByte()
		if e == io.EOF {
			return nil, PrematureEOF
		}
		if e != nil {
			return nil, e
		}
		if b == '\n' {
			break
		}
		if b != ' ' || n == len(counts) {
			return nil, BadHeader
		}
		counts[n], err = readUint(r)
		if err != nil {
			return nil, err
		}
		n++
	}
	if n < 5 {
		return nil, BadHeader
	}
	h.max, h.in, h.latch, h.out, h.and = counts[0], counts[1], counts[2], counts[3], counts[4]
	if h.latch != 0 {
		return nil, Latches
	}
	for _, c := range counts[5:n] {
		if c != 0 {
			return nil, Unsupported
		}
	}
	if h.max < h.in+h.and {
		return nil, BadHeader
	}
	return h, nil
}

// the symbol table and comment sections carry nothing structural;
// they are read and dropped.
func drainSymsAndComments(r *bufio.Reader) error {
	for {
		_, err := r.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func bufReader(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// reads a space character
func readSP(r *bufio.Reader) error {
	b, e := r.ReadByte()
	if e == io.EOF {
		return PrematureEOF
	}
	if e != nil {
		return e
	}
	if b != ' ' {
		return UnexpectedChar
	}
	return nil
}

// reads a new line character and returns nil unless there was no new
// line character
func readNL(r *bufio.Reader) error {
	b, e := r.ReadByte()
	if e == io.EOF {
		return PrematureEOF
	}
	if e != nil {
		return e
	}
	if b != '\n' {
		return UnexpectedChar
	}
	return nil
}

// reads non-white space and puts the result in buf
func readNonWS(r *bufio.Reader, buf []byte) ([]byte, error) {
	buf = buf[:0]
	for {
		b, e := r.ReadByte()
		if e == io.EOF {
			break
		}
		if e != nil {
			return buf, e
		}
		if b == ' ' || b == '\t' || b == '\r' || b == '\n' {
			r.UnreadByte()
			break
		}
		buf = append(buf, b)
	}
	return buf, nil
}

// reads a uint
func readUint(r *bufio.Reader) (uint, error) {
	var result uint
	first := true
	for {
		b, e := r.ReadByte()
		if e == io.EOF {
			if first {
				return 0, PrematureEOF
			}
			break
		}
		if e != nil {
			return 0, e
		}
		if b >= '0' && b <= '9' {
			result = result*10 + uint(b-'0')
			first = false
			continue
		}
		r.UnreadByte()
		break
	}
	if first {
		return 0, UnexpectedChar
	}
	return result, nil
}

// for binary aiger coding of and deltas
func write7(w *bufio.Writer, val uint) error {
	for {
		b := byte(val & 0x7f)
		val >>= 7
		if val != 0 {
			b |= 0x80
		}
		if err := w.WriteByte(b); err != nil {
			return err
		}
		if val == 0 {
			return nil
		}
	}
}

// for binary aiger coding of and deltas
func read7(r *bufio.Reader) (result uint, err error) {
	var i int
	for {
		b, e := r.ReadByte()
		if e == io.EOF {
			return 0, PrematureEOF
		}
		if e != nil {
			return 0, e
		}
		result |= (uint(b) & 0x7f) << uint(7*i)
		i++
		if b&0x80 == 0 {
			break
		}
	}
	return
}
