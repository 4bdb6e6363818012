package lib

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archiver"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

/*
	A library root looks like

		<root>/<library>/<cell>/part_table/master.tag
		<root>/<library>/<cell>/part_table/<file named in master.tag>
*/

// DefaultSkip lists path fragments of libraries that are never parsed.
var DefaultSkip = []string{"obsolete", "problem_parts", "nonparts"}

/*
	ListValid returns the library directories directly under root whose path
	does not contain any of the skip fragments
*/
func ListValid(root string, skip []string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	libraries := []string{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		path := filepath.Join(root, entry.Name())
		if isSkipped(path, skip) {
			continue
		}

		libraries = append(libraries, path)
	}

	return libraries, nil
}

func isSkipped(path string, skip []string) bool {
	for _, fragment := range skip {
		if strings.Contains(path, fragment) {
			return true
		}
	}

	return false
}

/*
	FindPartTableFiles returns the part table file of every cell in a library.
	The file is named by the first line of the cell's master.tag.
*/
func FindPartTableFiles(library string, log *zap.Logger) ([]string, error) {
	log = orNop(log)

	cells, err := os.ReadDir(library)
	if err != nil {
		return nil, err
	}

	files := []string{}
	for _, cell := range cells {
		if !cell.IsDir() {
			continue
		}

		dir := filepath.Join(library, cell.Name(), "part_table")
		name, err := readMasterTag(filepath.Join(dir, "master.tag"))
		if err != nil {
			continue
		}

		path := filepath.Join(dir, name)
		if !isFile(path) {
			log.Error("part table file does not exist", zap.String("path", path))
			continue
		}

		files = append(files, path)
	}

	return files, nil
}

func readMasterTag(path string) (string, error) {
	fp, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer fp.Close()

	scanner := bufio.NewScanner(fp)
	scanner.Scan()
	if err := scanner.Err(); err != nil {
		return "", err
	}

	return strings.TrimSpace(scanner.Text()), nil
}

/*
	Discover lists every part table file under root, library by library
*/
func Discover(root string, skip []string, log *zap.Logger) ([]string, error) {
	libraries, err := ListValid(root, skip)
	if err != nil {
		return nil, err
	}

	paths := []string{}
	for _, library := range libraries {
		files, err := FindPartTableFiles(library, log)
		if err != nil {
			return nil, err
		}

		paths = append(paths, files...)
	}

	return paths, nil
}

/*
	OpenLibraryRoot returns a directory to discover part tables in. An archive
	is unpacked into a temporary directory, which cleanup removes.
*/
func OpenLibraryRoot(path string) (root string, cleanup func(), err error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", nil, err
	}

	if info.IsDir() {
		return path, func() {}, nil
	}

	tmp, err := os.MkdirTemp("", "ptf-library-")
	if err != nil {
		return "", nil, err
	}

	cleanup = func() { os.RemoveAll(tmp) }
	if err := archiver.Unarchive(path, tmp); err != nil {
		cleanup()
		return "", nil, err
	}

	return tmp, cleanup, nil
}

type ParseResult struct {
	Path string
	File *PartTableFile
	Err  error
}

/*
	ParseFiles parses documents concurrently, at most workers at a time. Result
	i belongs to paths[i]. A document that fails is logged and reported in its
	result; the others are unaffected.
*/
func ParseFiles(ctx context.Context, paths []string, workers int, log *zap.Logger) []ParseResult {
	log = orNop(log)
	if workers < 1 {
		workers = 1
	}

	results := make([]ParseResult, len(paths))
	g := &errgroup.Group{}
	g.SetLimit(workers)
	for i, path := range paths {
		results[i].Path = path
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}

			log.Info("parsing", zap.String("path", path))
			file, err := ParseFile(path)
			if err != nil {
				log.Error("skipping part table file", zap.String("path", path), zap.Error(err))
				results[i].Err = err
				return nil
			}

			results[i].File = file
			return nil
		})
	}
	g.Wait()

	return results
}

/*
	Files returns the successfully parsed documents, in order
*/
func Files(results []ParseResult) []*PartTableFile {
	files := []*PartTableFile{}
	for _, result := range results {
		if result.File != nil {
			files = append(files, result.File)
		}
	}

	return files
}
