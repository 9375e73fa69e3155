package index

import (
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"
)

const dateFiledLayout = "2006-01-02"

type Item struct {
	CIK         uint32
	Filed       time.Time
	CompanyName string
	FormType    string
	Filename    string
}

func (self *Item) parseCIK(s string) error {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return fmt.Errorf("failed parse %q as CIK: %w", s, err)
	}
	self.CIK = uint32(v)
	return nil
}

func (self *Item) parseFiled(s string) error {
	filed, err := time.Parse(dateFiledLayout, s)
	if err != nil {
		return fmt.Errorf("failed parse %q as Date Filed: %w", s, err)
	}
	self.Filed = filed
	return nil
}

// AccessionNumber extracts the accession number from Filename, like
// "0000320193-23-000106" from
// "edgar/data/320193/0000320193-23-000106.txt".
func (self *Item) AccessionNumber() string {
	return strings.TrimSuffix(path.Base(self.Filename), ".txt")
}

// ArchivePath returns the filing directory path under the EDGAR
// archives, like "data/320193/000032019323000106". The directory name
// is the accession number with dashes removed.
func (self *Item) ArchivePath() string {
	dir := path.Dir(strings.TrimPrefix(self.Filename, "edgar/"))
	return path.Join(dir, strings.ReplaceAll(self.AccessionNumber(), "-", ""))
}
