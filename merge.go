package main

import (
	"crypto/md5"
	"io"
	"log"
	"os"
)

// scan is the outcome of the first pass over one input file: its dataset
// layout and the keep mask derived from the theta threshold.
type scan struct {
	Layout
	thetas []float64
	mask   []bool
	kept   int
}

func createMerged(s Settings) error {
	if err := s.Can(); err != nil {
		return err
	}
	dumpSettings(s)
	if err := writeMetadata(s.Files); err != nil {
		return err
	}

	scans, err := scanFiles(s)
	if err != nil {
		return err
	}
	var rows, kept int
	for _, c := range scans {
		log.Printf("%s: %d of %d injections kept", c.File, c.kept, c.Rows)
		rows += c.Rows
		kept += c.kept
	}

	cols, err := copyFiles(scans, s)
	if err != nil {
		return err
	}
	if err := writeInjections(s.Output, s.Group, cols); err != nil {
		return err
	}
	log.Printf("%d of %d injections written to %s", kept, rows, s.Output)
	return writeMetadata([]string{s.Output})
}

// scanFiles runs the first pass: every input is opened, the columns needed
// for the angle are read and the keep mask is computed. The dataset layout
// of the first file is the reference the other files must match.
func scanFiles(s Settings) ([]scan, error) {
	scans := make([]scan, 0, len(s.Files))
	for _, file := range s.Files {
		c, err := scanFile(file, s)
		if err != nil {
			return nil, err
		}
		if len(scans) > 0 {
			missing, extra := diffColumns(scans[0].Names, c.Names)
			if len(missing) > 0 || len(extra) > 0 {
				return nil, columnMismatch(file, missing, extra)
			}
		}
		scans = append(scans, c)
	}
	return scans, nil
}

func scanFile(file string, s Settings) (scan, error) {
	var c scan

	f, g, err := openGroup(file, s.Group)
	if err != nil {
		return c, err
	}
	defer f.Close()
	defer g.Close()

	if c.Layout, err = readLayout(file, g); err != nil {
		return c, err
	}
	cols, err := readColumns(file, g, thetaColumns, c.Rows)
	if err != nil {
		return c, err
	}
	c.thetas = make([]float64, c.Rows)
	for i := range c.thetas {
		if c.thetas[i], err = Theta(binaryAt(cols, i), s.FLower); err != nil {
			return c, badRow(file, i, err)
		}
	}
	c.mask, c.kept = keepMask(c.thetas, radians(s.MaxTheta))
	return c, nil
}

// copyFiles runs the second pass: output columns are allocated from the mask
// totals and the kept rows of every input are copied in input order. The
// computed angle is written as its own theta column, replacing one carried
// by the inputs if any.
func copyFiles(scans []scan, s Settings) (map[string][]float64, error) {
	var total int
	for _, c := range scans {
		total += c.kept
	}
	names := scans[0].Names
	out := make(map[string][]float64, len(names)+1)
	for _, n := range names {
		out[n] = make([]float64, 0, total)
	}
	out["theta"] = make([]float64, 0, total)

	for _, c := range scans {
		f, g, err := openGroup(c.File, s.Group)
		if err != nil {
			return nil, err
		}
		cols, err := readColumns(c.File, g, names, c.Rows)
		g.Close()
		f.Close()
		if err != nil {
			return nil, err
		}
		for _, n := range names {
			if n == "theta" {
				continue
			}
			out[n] = appendMasked(out[n], cols[n], c.mask)
		}
		out["theta"] = appendMasked(out["theta"], c.thetas, c.mask)
	}
	return out, nil
}

func keepMask(thetas []float64, max float64) ([]bool, int) {
	var (
		mask = make([]bool, len(thetas))
		kept int
	)
	for i, t := range thetas {
		if t <= max {
			mask[i] = true
			kept++
		}
	}
	return mask, kept
}

func appendMasked(dst, src []float64, mask []bool) []float64 {
	for i, keep := range mask {
		if keep {
			dst = append(dst, src[i])
		}
	}
	return dst
}

func diffColumns(ref, names []string) (missing, extra []string) {
	in := make(map[string]bool, len(names))
	for _, n := range names {
		in[n] = true
	}
	for _, n := range ref {
		if !in[n] {
			missing = append(missing, n)
		}
		delete(in, n)
	}
	for _, n := range names {
		if in[n] {
			extra = append(extra, n)
		}
	}
	return missing, extra
}

func writeMetadata(files []string) error {
	digest := md5.New()
	aboutFile := func(file string) error {
		defer digest.Reset()

		r, err := os.Open(file)
		if err != nil {
			return checkError(err, nil)
		}
		defer r.Close()

		if _, err := io.Copy(digest, r); err != nil {
			return checkError(err, nil)
		}
		s, err := r.Stat()
		if err != nil {
			return checkError(err, nil)
		}
		log.Printf("%s: md5 = %x, lastmod: %s, size: %d bytes", file, digest.Sum(nil), s.ModTime().Format("2006-01-02 15:04:05"), s.Size())
		return nil
	}
	for _, f := range files {
		if err := aboutFile(f); err != nil {
			return err
		}
	}
	return nil
}
