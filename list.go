package main

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func ListInjections(s Settings) error {
	if err := s.Can(); err != nil {
		return err
	}
	scans, err := scanFiles(s)
	if err != nil {
		return err
	}
	fmt.Printf("%3s | %-40s | %8s | %8s | %8s | %8s | %8s", "#", "FILE", "ROWS", "KEPT", "MIN", "MEAN", "MAX")
	fmt.Println()

	var rows, kept int
	for i, c := range scans {
		min, mean, max := "-", "-", "-"
		if len(c.thetas) > 0 {
			min = fmt.Sprintf("%8.2f", degrees(floats.Min(c.thetas)))
			mean = fmt.Sprintf("%8.2f", degrees(stat.Mean(c.thetas, nil)))
			max = fmt.Sprintf("%8.2f", degrees(floats.Max(c.thetas)))
		}
		fmt.Printf("%3d | %-40s | %8d | %8d | %8s | %8s | %8s", i, c.File, c.Rows, c.kept, min, mean, max)
		fmt.Println()
		rows += c.Rows
		kept += c.kept
	}
	fmt.Println()
	fmt.Printf("total: %d of %d injections kept (max theta: %.2f deg)", kept, rows, s.MaxTheta)
	fmt.Println()
	return nil
}

func ListFiles(s Settings) error {
	if len(s.Files) == 0 {
		return noInput()
	}
	fmt.Printf("%3s | %-40s | %8s | %8s | %s", "#", "FILE", "ROWS", "COLS", "DATASETS")
	fmt.Println()
	for i, file := range s.Files {
		f, g, err := openGroup(file, s.Group)
		if err != nil {
			return err
		}
		lay, err := readLayout(file, g)
		g.Close()
		f.Close()
		if err != nil {
			return err
		}
		fmt.Printf("%3d | %-40s | %8d | %8d | %s", i, file, lay.Rows, len(lay.Names), strings.Join(lay.Names, ","))
		fmt.Println()
	}
	return nil
}
