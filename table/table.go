package table

import "github.com/latticevision/objmeasure/errs"

// ValueInfo describes one scalar column within a feature: a short label
// and its physical unit.
type ValueInfo struct {
	Name string
	Unit string
}

// ValueInfoArray is the per-feature declaration a feature's Initialize
// returns, and the per-table declaration Table.Values returns.
type ValueInfoArray []ValueInfo

// FeatureInfo is the runtime record of one feature's place in the table:
// its name, the column its first value occupies, and how many columns it
// spans.
type FeatureInfo struct {
	Name         string
	StartColumn  int
	NumberValues int
}

// Cell is the contiguous block of scalar values one feature produced for
// one object. It aliases the table's backing buffer; it is valid only
// while the table that produced it is not garbage collected.
type Cell []float64

// IDIndexMap maps an object identifier to its row index. The zero value
// for a missing key is never relied upon; presence is always checked.
type IDIndexMap map[uint32]int

// Table is the column-oriented measurement result. See the package doc for
// the layout and lifecycle.
type Table struct {
	objects      []uint32
	objectIndex  IDIndexMap
	features     []FeatureInfo
	featureIndex map[string]int
	values       ValueInfoArray
	data         []float64
	forged       bool
}

// New returns an empty, mutable Table.
func New() *Table {
	return &Table{
		objectIndex:  make(IDIndexMap),
		featureIndex: make(map[string]int),
	}
}

// AddFeature appends a feature's value columns to the schema. Fails with
// errs.AlreadyForged if the table is forged, or errs.InvalidArgument if
// name is empty, values is empty, or name is already present.
func (t *Table) AddFeature(name string, values ValueInfoArray) error {
	if t.forged {
		return errs.New(errs.AlreadyForged, "cannot add feature: table is forged")
	}
	if name == "" {
		return errs.New(errs.InvalidArgument, "feature name must not be empty")
	}
	if len(values) == 0 {
		return errs.New(errs.InvalidArgument, "feature "+name+" needs at least one value")
	}
	if t.FeatureExists(name) {
		return errs.Newf(errs.InvalidArgument, "feature already present: %s", name)
	}
	t.addFeature(name, values)
	return nil
}

// EnsureFeature behaves like AddFeature except a name collision is a
// silent no-op instead of an error.
func (t *Table) EnsureFeature(name string, values ValueInfoArray) error {
	if t.forged {
		return errs.New(errs.AlreadyForged, "cannot add feature: table is forged")
	}
	if name == "" {
		return errs.New(errs.InvalidArgument, "feature name must not be empty")
	}
	if t.FeatureExists(name) {
		return nil
	}
	if len(values) == 0 {
		return errs.New(errs.InvalidArgument, "feature "+name+" needs at least one value")
	}
	t.addFeature(name, values)
	return nil
}

func (t *Table) addFeature(name string, values ValueInfoArray) {
	start := len(t.values)
	t.values = append(t.values, values...)
	index := len(t.features)
	t.features = append(t.features, FeatureInfo{Name: name, StartColumn: start, NumberValues: len(values)})
	t.featureIndex[name] = index
}

// AddObjectIDs appends object identifiers to the row order. Fails with
// errs.AlreadyForged if the table is forged, or errs.DuplicateObject if
// any identifier is already present (no rows are added from that call).
func (t *Table) AddObjectIDs(ids []uint32) error {
	if t.forged {
		return errs.New(errs.AlreadyForged, "cannot add objects: table is forged")
	}
	for _, id := range ids {
		if t.ObjectExists(id) {
			return errs.Newf(errs.DuplicateObject, "object already present: %d", id)
		}
	}
	for _, id := range ids {
		index := len(t.objects)
		t.objects = append(t.objects, id)
		t.objectIndex[id] = index
	}
	return nil
}

// Forge allocates the dense data buffer. Idempotent: calling Forge again
// on an already-forged table does nothing. Fails if the table would forge
// to zero size (no features or no objects).
func (t *Table) Forge() error {
	if t.forged {
		return nil
	}
	n := len(t.values) * len(t.objects)
	if n == 0 {
		return errs.New(errs.InvalidArgument, "cannot forge a zero-sized table")
	}
	t.data = make([]float64, n)
	t.forged = true
	return nil
}

// IsForged reports whether Forge has been called successfully.
func (t *Table) IsForged() bool { return t.forged }

// Data returns the raw backing buffer. Fails with errs.NotForged if the
// table has not been forged.
func (t *Table) Data() ([]float64, error) {
	if !t.forged {
		return nil, errs.New(errs.NotForged, "table is not forged")
	}
	return t.data, nil
}

// Stride returns the number of scalar columns in one row. Fails with
// errs.NotForged if the table has not been forged.
func (t *Table) Stride() (int, error) {
	if !t.forged {
		return 0, errs.New(errs.NotForged, "table is not forged")
	}
	return len(t.values), nil
}

// FeatureExists reports whether name has been added to the table.
func (t *Table) FeatureExists(name string) bool {
	_, ok := t.featureIndex[name]
	return ok
}

// FeatureIndex returns the column-group index for name. Fails with
// errs.UnknownFeature if name is not present.
func (t *Table) FeatureIndex(name string) (int, error) {
	i, ok := t.featureIndex[name]
	if !ok {
		return 0, errs.Newf(errs.UnknownFeature, "feature not present: %s", name)
	}
	return i, nil
}

// ObjectExists reports whether id has been added to the table.
func (t *Table) ObjectExists(id uint32) bool {
	_, ok := t.objectIndex[id]
	return ok
}

// ObjectIndex returns the row index for id. Fails with errs.UnknownObject
// if id is not present.
func (t *Table) ObjectIndex(id uint32) (int, error) {
	i, ok := t.objectIndex[id]
	if !ok {
		return 0, errs.Newf(errs.UnknownObject, "object not present: %d", id)
	}
	return i, nil
}

// NumberOfFeatures returns the number of features added to the table.
func (t *Table) NumberOfFeatures() int { return len(t.features) }

// NumberOfObjects returns the number of objects added to the table.
func (t *Table) NumberOfObjects() int { return len(t.objects) }

// NumberOfValues returns the total number of scalar value columns across
// every feature.
func (t *Table) NumberOfValues() int { return len(t.values) }

// NumberOfValuesOf returns the number of scalar values the named feature
// occupies. Fails with errs.UnknownFeature if name is not present.
func (t *Table) NumberOfValuesOf(name string) (int, error) {
	i, err := t.FeatureIndex(name)
	if err != nil {
		return 0, err
	}
	return t.features[i].NumberValues, nil
}

// ValuesOf returns a copy of the value-info records for the named feature.
// Fails with errs.UnknownFeature if name is not present.
func (t *Table) ValuesOf(name string) (ValueInfoArray, error) {
	i, err := t.FeatureIndex(name)
	if err != nil {
		return nil, err
	}
	f := t.features[i]
	out := make(ValueInfoArray, f.NumberValues)
	copy(out, t.values[f.StartColumn:f.StartColumn+f.NumberValues])
	return out, nil
}

// Values returns a copy of the value-info records for every feature, in
// column order.
func (t *Table) Values() ValueInfoArray {
	out := make(ValueInfoArray, len(t.values))
	copy(out, t.values)
	return out
}

// Objects returns a copy of the object identifiers, in row order.
func (t *Table) Objects() []uint32 {
	out := make([]uint32, len(t.objects))
	copy(out, t.objects)
	return out
}

// Features returns a copy of the feature-info records, in column order.
func (t *Table) Features() []FeatureInfo {
	out := make([]FeatureInfo, len(t.features))
	copy(out, t.features)
	return out
}

// IDIndex returns the object-identifier-to-row-index map the table
// maintains internally. The driver shares this by reference with scanline
// features, matching spec section 4.5 step 5.
func (t *Table) IDIndex() IDIndexMap { return t.objectIndex }

func (t *Table) cellAt(rowIndex int, f FeatureInfo) Cell {
	start := rowIndex*len(t.values) + f.StartColumn
	return Cell(t.data[start : start+f.NumberValues])
}

// FeatureView addresses one feature's column group across every object
// row. See FirstFeature and FeatureByName.
type FeatureView struct {
	t     *Table
	index int
}

// FirstFeature returns a FeatureView positioned at the first feature.
func (t *Table) FirstFeature() FeatureView { return FeatureView{t: t, index: 0} }

// FeatureByName returns a FeatureView positioned at the named feature.
// Fails with errs.UnknownFeature if name is not present.
func (t *Table) FeatureByName(name string) (FeatureView, error) {
	i, err := t.FeatureIndex(name)
	if err != nil {
		return FeatureView{}, err
	}
	return FeatureView{t: t, index: i}, nil
}

// IsAtEnd reports whether v has advanced past the last feature.
func (v FeatureView) IsAtEnd() bool { return v.index >= len(v.t.features) }

// Next advances v to the next feature.
func (v FeatureView) Next() FeatureView { return FeatureView{t: v.t, index: v.index + 1} }

// Name returns the feature this view addresses.
func (v FeatureView) Name() string { return v.t.features[v.index].Name }

// NumberOfValues returns how many scalar values this feature's cells hold.
func (v FeatureView) NumberOfValues() int { return v.t.features[v.index].NumberValues }

// NumberOfObjects returns the number of object rows in the table.
func (v FeatureView) NumberOfObjects() int { return v.t.NumberOfObjects() }

// Objects returns the object identifiers in row order.
func (v FeatureView) Objects() []uint32 { return v.t.Objects() }

// Cell returns the values this feature holds for the object with the
// given identifier. Fails with errs.UnknownObject if id is not present.
func (v FeatureView) Cell(id uint32) (Cell, error) {
	row, err := v.t.ObjectIndex(id)
	if err != nil {
		return nil, err
	}
	return v.t.cellAt(row, v.t.features[v.index]), nil
}

// FirstObjectCell returns an iterator over this feature's cells, one per
// object, in row order.
func (v FeatureView) FirstObjectCell() FeatureCellIter {
	return FeatureCellIter{view: v, row: 0}
}

// FeatureCellIter iterates the cells of one FeatureView across every
// object row.
type FeatureCellIter struct {
	view FeatureView
	row  int
}

// IsAtEnd reports whether the iterator has advanced past the last object.
func (it FeatureCellIter) IsAtEnd() bool { return it.row >= it.view.t.NumberOfObjects() }

// Next advances the iterator to the next object.
func (it FeatureCellIter) Next() FeatureCellIter {
	return FeatureCellIter{view: it.view, row: it.row + 1}
}

// Cell returns the current object's cell for this feature.
func (it FeatureCellIter) Cell() Cell { return it.view.t.cellAt(it.row, it.view.t.features[it.view.index]) }

// ObjectID returns the identifier of the object the iterator currently
// addresses.
func (it FeatureCellIter) ObjectID() uint32 { return it.view.t.objects[it.row] }

// Name returns the feature name this iterator's cells belong to.
func (it FeatureCellIter) Name() string { return it.view.Name() }

// ObjectView addresses one object's row across every feature column. See
// FirstObject and ObjectByID.
type ObjectView struct {
	t     *Table
	index int
}

// FirstObject returns an ObjectView positioned at the first object.
func (t *Table) FirstObject() ObjectView { return ObjectView{t: t, index: 0} }

// ObjectByID returns an ObjectView positioned at the given object. Fails
// with errs.UnknownObject if id is not present.
func (t *Table) ObjectByID(id uint32) (ObjectView, error) {
	i, err := t.ObjectIndex(id)
	if err != nil {
		return ObjectView{}, err
	}
	return ObjectView{t: t, index: i}, nil
}

// IsAtEnd reports whether v has advanced past the last object.
func (v ObjectView) IsAtEnd() bool { return v.index >= len(v.t.objects) }

// Next advances v to the next object.
func (v ObjectView) Next() ObjectView { return ObjectView{t: v.t, index: v.index + 1} }

// ObjectID returns the identifier this view addresses.
func (v ObjectView) ObjectID() uint32 { return v.t.objects[v.index] }

// NumberOfFeatures returns the number of feature columns in the table.
func (v ObjectView) NumberOfFeatures() int { return v.t.NumberOfFeatures() }

// Features returns the feature-info records, in column order.
func (v ObjectView) Features() []FeatureInfo { return v.t.Features() }

// Cell returns the values the named feature holds for this object. Fails
// with errs.UnknownFeature if name is not present.
func (v ObjectView) Cell(name string) (Cell, error) {
	i, err := v.t.FeatureIndex(name)
	if err != nil {
		return nil, err
	}
	return v.t.cellAt(v.index, v.t.features[i]), nil
}

// FirstFeatureCell returns an iterator over this object's cells, one per
// feature, in column order.
func (v ObjectView) FirstFeatureCell() ObjectCellIter {
	return ObjectCellIter{view: v, col: 0}
}

// ObjectCellIter iterates the cells of one ObjectView across every feature
// column.
type ObjectCellIter struct {
	view ObjectView
	col  int
}

// IsAtEnd reports whether the iterator has advanced past the last feature.
func (it ObjectCellIter) IsAtEnd() bool { return it.col >= it.view.t.NumberOfFeatures() }

// Next advances the iterator to the next feature.
func (it ObjectCellIter) Next() ObjectCellIter {
	return ObjectCellIter{view: it.view, col: it.col + 1}
}

// Cell returns the current feature's cell for this object.
func (it ObjectCellIter) Cell() Cell {
	return it.view.t.cellAt(it.view.index, it.view.t.features[it.col])
}

// Name returns the feature name this iterator currently addresses.
func (it ObjectCellIter) Name() string { return it.view.t.features[it.col].Name }
