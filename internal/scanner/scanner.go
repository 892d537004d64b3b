// Package scanner discovers input photos grouped by their intended print
// size. The grouping convention is directory names of the form
// "<width>_<height>" with both values in centimeters, e.g. "10_15".
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/yotam4h/photopacker/internal/layout"
)

// imageExtensions lists the recognized input file extensions (lowercase).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tiff": true,
	".tif":  true,
	".bmp":  true,
}

// SizeGroup is an ordered set of image paths sharing one print size. Paths
// are sorted lexicographically so runs are reproducible regardless of the
// platform's directory enumeration order.
type SizeGroup struct {
	Size  layout.PhysicalSize
	Paths []string
}

// Warning describes a skipped folder. Warnings never abort a scan.
type Warning struct {
	Folder string
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Folder, w.Reason)
}

// Scan reads the immediate subdirectories of root and builds one SizeGroup
// per parseable size folder. Folders whose name does not parse, or which
// contain no images, produce a Warning and are skipped. Groups are returned
// in ascending (width, height) order.
func Scan(root string) ([]SizeGroup, []Warning, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var groups []SizeGroup
	var warnings []Warning

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		size, ok := parseSizeName(entry.Name())
		if !ok {
			warnings = append(warnings, Warning{
				Folder: entry.Name(),
				Reason: "folder name is not a <width>_<height> size in cm",
			})
			continue
		}

		paths, err := listImages(filepath.Join(root, entry.Name()))
		if err != nil {
			return nil, nil, err
		}
		if len(paths) == 0 {
			warnings = append(warnings, Warning{
				Folder: entry.Name(),
				Reason: "no images found",
			})
			continue
		}

		groups = append(groups, SizeGroup{Size: size, Paths: paths})
	}

	sort.Slice(groups, func(i, j int) bool {
		a, b := groups[i].Size, groups[j].Size
		if a.WidthCm != b.WidthCm {
			return a.WidthCm < b.WidthCm
		}
		return a.HeightCm < b.HeightCm
	})

	return groups, warnings, nil
}

// parseSizeName parses "10_15" into a PhysicalSize. Both parts must be
// strictly positive decimal numbers.
func parseSizeName(name string) (layout.PhysicalSize, bool) {
	parts := strings.Split(name, "_")
	if len(parts) != 2 {
		return layout.PhysicalSize{}, false
	}

	width, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return layout.PhysicalSize{}, false
	}
	height, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return layout.PhysicalSize{}, false
	}

	size := layout.PhysicalSize{WidthCm: width, HeightCm: height}
	if !size.Valid() {
		return layout.PhysicalSize{}, false
	}
	return size, true
}

func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read size folder %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if imageExtensions[ext] {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}
