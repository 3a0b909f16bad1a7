package main

import (
	"errors"
	"log"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/hdf5"
)

// thetaColumns are the datasets every input file must provide for the
// angle computation.
var thetaColumns = []string{
	"mass1", "mass2",
	"spin1x", "spin1y", "spin1z",
	"spin2x", "spin2y", "spin2z",
	"inclination",
}

// errNotColumn marks objects of the injection group that are not 1-D
// numeric datasets. They are skipped, not copied.
var errNotColumn = errors.New("not a numeric dataset")

// Layout describes the usable datasets of one injection group.
type Layout struct {
	File  string
	Names []string
	Rows  int
}

func openGroup(file, group string) (*hdf5.File, *hdf5.Group, error) {
	f, err := hdf5.OpenFile(file, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, nil, checkError(err, nil)
	}
	g, err := f.OpenGroup(group)
	if err != nil {
		f.Close()
		return nil, nil, missingGroup(file, group)
	}
	return f, g, nil
}

func readLayout(file string, g *hdf5.Group) (Layout, error) {
	lay := Layout{File: file, Rows: -1}

	n, err := g.NumObjects()
	if err != nil {
		return lay, checkError(err, nil)
	}
	for i := uint(0); i < n; i++ {
		name, err := g.ObjectNameByIndex(i)
		if err != nil {
			return lay, checkError(err, nil)
		}
		switch rows, err := columnLength(g, name); {
		case err == errNotColumn:
			log.Printf("%s: skipping dataset %s", file, name)
		case err != nil:
			return lay, err
		case lay.Rows >= 0 && rows != lay.Rows:
			return lay, badLength(file, name, rows, lay.Rows)
		default:
			lay.Rows = rows
			lay.Names = append(lay.Names, name)
		}
	}
	if lay.Rows < 0 {
		lay.Rows = 0
	}
	sort.Strings(lay.Names)
	return lay, nil
}

func columnLength(g *hdf5.Group, name string) (int, error) {
	d, err := g.OpenDataset(name)
	if err != nil {
		return 0, errNotColumn
	}
	defer d.Close()
	return datasetLength(d)
}

func datasetLength(d *hdf5.Dataset) (int, error) {
	t, err := d.Datatype()
	if err != nil {
		return 0, checkError(err, nil)
	}
	defer t.Close()
	if c := t.Class(); c != hdf5.T_INTEGER && c != hdf5.T_FLOAT {
		return 0, errNotColumn
	}

	s := d.Space()
	defer s.Close()
	dims, _, err := s.SimpleExtentDims()
	if err != nil {
		return 0, checkError(err, nil)
	}
	if len(dims) != 1 {
		return 0, errNotColumn
	}
	return int(dims[0]), nil
}

func readColumns(file string, g *hdf5.Group, names []string, rows int) (map[string][]float64, error) {
	cols := make(map[string][]float64, len(names))
	for _, n := range names {
		vs, err := readColumn(g, n)
		if err == errNotColumn {
			return nil, missingColumn(file, n)
		}
		if err != nil {
			return nil, err
		}
		if len(vs) != rows {
			return nil, badLength(file, n, len(vs), rows)
		}
		cols[n] = vs
	}
	return cols, nil
}

func readColumn(g *hdf5.Group, name string) ([]float64, error) {
	d, err := g.OpenDataset(name)
	if err != nil {
		return nil, errNotColumn
	}
	defer d.Close()

	rows, err := datasetLength(d)
	if err != nil {
		return nil, err
	}
	vs := make([]float64, rows)
	if rows == 0 {
		return vs, nil
	}
	if err := d.Read(&vs); err != nil {
		return nil, checkError(err, nil)
	}
	return vs, nil
}

func binaryAt(cols map[string][]float64, i int) Binary {
	return Binary{
		Mass1: cols["mass1"][i],
		Mass2: cols["mass2"][i],
		Spin1: vecAt(cols, "spin1", i),
		Spin2: vecAt(cols, "spin2", i),

		Inclination: cols["inclination"][i],
	}
}

func vecAt(cols map[string][]float64, prefix string, i int) r3.Vec {
	return r3.Vec{
		X: cols[prefix+"x"][i],
		Y: cols[prefix+"y"][i],
		Z: cols[prefix+"z"][i],
	}
}

func writeInjections(file, group string, cols map[string][]float64) error {
	f, err := hdf5.CreateFile(file, hdf5.F_ACC_TRUNC)
	if err != nil {
		return checkError(err, nil)
	}
	defer f.Close()

	g, err := f.CreateGroup(group)
	if err != nil {
		return checkError(err, nil)
	}
	defer g.Close()

	names := make([]string, 0, len(cols))
	for n := range cols {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		if err := writeColumn(g, n, cols[n]); err != nil {
			return err
		}
	}
	return nil
}

func writeColumn(g *hdf5.Group, name string, vs []float64) error {
	s, err := hdf5.CreateSimpleDataspace([]uint{uint(len(vs))}, nil)
	if err != nil {
		return checkError(err, nil)
	}
	defer s.Close()

	d, err := g.CreateDataset(name, hdf5.T_NATIVE_DOUBLE, s)
	if err != nil {
		return checkError(err, nil)
	}
	defer d.Close()
	if len(vs) == 0 {
		return nil
	}
	return checkError(d.Write(&vs), nil)
}
