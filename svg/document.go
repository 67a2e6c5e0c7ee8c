package svg

import (
	"io"
	"sort"
	"strings"

	"github.com/cfortier/sheetsvg/geom"
)

// GroupHandle addresses one group node in a document's arena. The zero
// handle is the implicit content group at the document root.
type GroupHandle int

// childRef points at either a nested group or a leaf shape, preserving
// emission order within its parent.
type childRef struct {
	group bool
	index int
}

// groupNode is one arena entry. Parent links let handles be resolved
// without walking the stack.
type groupNode struct {
	parent   GroupHandle
	id       string
	class    string
	data     []dataAttr
	children []childRef
}

// dataAttr is one data-* attribute; kept as a slice so output order is
// deterministic.
type dataAttr struct {
	key   string
	value string
}

// Document is an incrementally built SVG document. The zero value is not
// usable; call NewDocument.
type Document struct {
	width   float64
	height  float64
	viewBox [4]float64

	nodes  []groupNode
	shapes []shape
	stack  []GroupHandle

	bounds geom.Bounds
}

// NewDocument creates a document with the given canvas size and a viewport
// anchored at the origin.
func NewDocument(width, height float64) *Document {
	return &Document{
		width:   width,
		height:  height,
		viewBox: [4]float64{0, 0, width, height},
		nodes:   []groupNode{{parent: -1}},
	}
}

// Width returns the declared canvas width.
func (d *Document) Width() float64 {
	return d.width
}

// Height returns the declared canvas height.
func (d *Document) Height() float64 {
	return d.height
}

// ViewBox returns the viewport rectangle: origin x, origin y, width, height.
func (d *Document) ViewBox() (x, y, w, h float64) {
	return d.viewBox[0], d.viewBox[1], d.viewBox[2], d.viewBox[3]
}

// current returns the group handle shapes currently attach to.
func (d *Document) current() GroupHandle {
	if len(d.stack) == 0 {
		return 0
	}
	return d.stack[len(d.stack)-1]
}

// attach appends a child to a group, keeping z-order.
func (d *Document) attach(parent GroupHandle, ref childRef) {
	d.nodes[parent].children = append(d.nodes[parent].children, ref)
}

// StartGroup opens a new group under the current one and makes it current.
// id and class may be empty; data attributes are emitted as data-<key>
// in sorted key order.
func (d *Document) StartGroup(id, class string, data map[string]string) GroupHandle {
	attrs := make([]dataAttr, 0, len(data))
	for k, v := range data {
		attrs = append(attrs, dataAttr{key: k, value: v})
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].key < attrs[j].key })

	parent := d.current()
	handle := GroupHandle(len(d.nodes))
	d.nodes = append(d.nodes, groupNode{
		parent: parent,
		id:     id,
		class:  class,
		data:   attrs,
	})
	d.attach(parent, childRef{group: true, index: int(handle)})
	d.stack = append(d.stack, handle)
	return handle
}

// EndGroup closes the current group, returning to its parent. Calling it
// with no open group is a no-op.
func (d *Document) EndGroup() {
	if len(d.stack) == 0 {
		return
	}
	d.stack = d.stack[:len(d.stack)-1]
}

// Depth returns the number of currently open groups.
func (d *Document) Depth() int {
	return len(d.stack)
}

// addShape attaches a leaf shape to the current group.
func (d *Document) addShape(s shape) {
	index := len(d.shapes)
	d.shapes = append(d.shapes, s)
	d.attach(d.current(), childRef{index: index})
}

// UpdateBounds records a coordinate that should influence fit-to-content
// framing. Shape emission does not call this; it is the caller's
// responsibility per point of interest.
func (d *Document) UpdateBounds(x, y float64) {
	d.bounds.Update(x, y)
}

// Bounds returns the running bounding box.
func (d *Document) Bounds() geom.Bounds {
	return d.bounds
}

// DefaultFitPadding is the fit-to-content margin, in output units.
const DefaultFitPadding = 5.0

// FitToContent recomputes the viewport to tightly enclose all recorded
// bounds plus padding on every side, and updates the declared canvas size to
// match. If no bounds were ever recorded this is a no-op.
func (d *Document) FitToContent(padding float64) {
	if !d.bounds.IsSet() {
		return
	}
	w := d.bounds.Width() + 2*padding
	h := d.bounds.Height() + 2*padding
	d.viewBox = [4]float64{d.bounds.MinX - padding, d.bounds.MinY - padding, w, h}
	d.width = w
	d.height = h
}

// String serializes the document to SVG text.
func (d *Document) String() string {
	var sb strings.Builder
	d.encode(&sb)
	return sb.String()
}

// WriteTo serializes the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

func (d *Document) encode(sb *strings.Builder) {
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="`)
	sb.WriteString(formatNum(d.width))
	sb.WriteString(`" height="`)
	sb.WriteString(formatNum(d.height))
	sb.WriteString(`" viewBox="`)
	sb.WriteString(formatNum(d.viewBox[0]))
	sb.WriteString(" ")
	sb.WriteString(formatNum(d.viewBox[1]))
	sb.WriteString(" ")
	sb.WriteString(formatNum(d.viewBox[2]))
	sb.WriteString(" ")
	sb.WriteString(formatNum(d.viewBox[3]))
	sb.WriteString("\">\n")

	d.encodeChildren(sb, 0, 1)

	sb.WriteString("</svg>\n")
}

// encodeChildren writes a group's children in z-order.
func (d *Document) encodeChildren(sb *strings.Builder, handle GroupHandle, depth int) {
	for _, ref := range d.nodes[handle].children {
		if ref.group {
			d.encodeGroup(sb, GroupHandle(ref.index), depth)
		} else {
			d.shapes[ref.index].encode(sb, depth)
		}
	}
}

func (d *Document) encodeGroup(sb *strings.Builder, handle GroupHandle, depth int) {
	node := &d.nodes[handle]

	indent(sb, depth)
	sb.WriteString("<g")
	if node.id != "" {
		sb.WriteString(` id="`)
		sb.WriteString(escape(node.id))
		sb.WriteString(`"`)
	}
	if node.class != "" {
		sb.WriteString(` class="`)
		sb.WriteString(escape(node.class))
		sb.WriteString(`"`)
	}
	for _, attr := range node.data {
		sb.WriteString(` data-`)
		sb.WriteString(attr.key)
		sb.WriteString(`="`)
		sb.WriteString(escape(attr.value))
		sb.WriteString(`"`)
	}
	sb.WriteString(">\n")

	d.encodeChildren(sb, handle, depth+1)

	indent(sb, depth)
	sb.WriteString("</g>\n")
}

func indent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
}
