package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/edgarlab/edgar/client"
	"github.com/edgarlab/edgar/client/index"
	"github.com/edgarlab/edgar/cmd/internal/common"
)

// Number of parallel downloads
const downloadProcs = 10

var (
	edgarDataDir  string
	downloadForms []string
	downloadSince string

	downloadCmd = cobra.Command{
		Use:   "download CIK",
		Short: "Download XBRL filings of a company from EDGAR archives",
		Long: `Walks EDGAR quarterly master indexes, finds filings of the company
with given CIK and downloads the XBRL file set of every filing into
a local directory, one subdirectory per filing.`,
		Example: `
  - Download Apple 10-K and 10-Q filings since 2023:

    $ edgar download 320193 --since 2023-01-01 -d ./filings`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cik, err := strconv.ParseUint(args[0], 10, 32)
			cobra.CheckErr(err)
			since, err := time.Parse(time.DateOnly, downloadSince)
			cobra.CheckErr(err)

			edgar, err := common.NewClient()
			cobra.CheckErr(err)
			d := NewDownload(edgar, newDownloadDir(edgarDataDir)).
				WithForms(downloadForms).
				WithProcsLimit(downloadProcs)
			cobra.CheckErr(d.Download(uint32(cik), since))
		},
	}
)

func init() {
	rootCmd.AddCommand(&downloadCmd)
	downloadCmd.Flags().StringVarP(&edgarDataDir, "datadir", "d", "./",
		"store filing files into this directory")
	downloadCmd.Flags().StringSliceVar(&downloadForms, "forms",
		[]string{"10-K", "10-Q"}, "download filings of these form types")
	downloadCmd.Flags().StringVar(&downloadSince, "since",
		time.Now().AddDate(-3, 0, 0).Format(time.DateOnly),
		"download filings filed on this date or later")
}

func NewDownload(client *client.Client, st Storage) *Download {
	return &Download{
		client:  client,
		storage: st,
		procs:   1,
	}
}

type Download struct {
	client  *client.Client
	storage Storage

	forms []string
	procs int
}

type Storage interface {
	Save(path, fname string, r io.Reader) error
}

func (self *Download) WithForms(forms []string) *Download {
	self.forms = forms
	return self
}

func (self *Download) WithProcsLimit(lim int) *Download {
	self.procs = lim
	return self
}

// Download fetches the XBRL file set of every filing the company with
// cik filed since the given date.
func (self *Download) Download(cik uint32, since time.Time) error {
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(self.procs)

	items, err := self.companyFilings(ctx, cik, since)
	if err != nil {
		return err
	}
	log.Printf("found %v filings of CIK=%v", len(items), cik)

	for _, item := range items {
		if ctx.Err() != nil {
			break
		}
		path := item.ArchivePath()
		g.Go(func() error { return self.processFiling(ctx, path) })
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("download filings of CIK=%v: %w", cik, err)
	}
	return nil
}

func (self *Download) companyFilings(ctx context.Context, cik uint32,
	since time.Time,
) ([]index.Item, error) {
	var items []index.Item
	for _, qtrPath := range client.QtrPaths(since, time.Now()) {
		qtrItems, err := self.quarterFilings(ctx, cik, qtrPath)
		if err != nil {
			return nil, err
		}
		for _, item := range qtrItems {
			if !item.Filed.Before(since) {
				items = append(items, item)
			}
		}
	}
	return items, nil
}

func (self *Download) quarterFilings(ctx context.Context, cik uint32,
	qtrPath string,
) ([]index.Item, error) {
	path, err := url.JoinPath("full-index", qtrPath, "master.idx")
	if err != nil {
		return nil, fmt.Errorf("url join of %v: %w", qtrPath, err)
	}

	log.Printf("reading %v", path)
	resp, err := self.client.GetArchiveFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", path, err)
	}
	defer resp.Body.Close()

	indexFile := index.NewFile(resp.Body)
	if err := indexFile.ReadHeaders(); err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}

	items, err := indexFile.CompanyFilings(cik, self.forms...)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	return items, nil
}

func (self *Download) processFiling(ctx context.Context, path string) error {
	archive, err := self.client.IndexArchive(ctx, path)
	if err != nil {
		return fmt.Errorf("index of %q: %w", path, err)
	}

	for _, item := range archive.Items() {
		if ctx.Err() != nil {
			return nil
		}
		if item.Type != "file" || !self.NeedFile(item.Name) {
			continue
		}
		if err := self.downloadFile(ctx, path, item.Name); err != nil {
			return err
		}
	}
	return nil
}

// NeedFile reports whether fname belongs to the XBRL file set of a
// filing: schema, linkbases and the instance document.
func (self *Download) NeedFile(fname string) bool {
	return strings.HasSuffix(fname, ".xsd") || strings.HasSuffix(fname, ".xml")
}

func (self *Download) downloadFile(ctx context.Context, parentPath, fname string,
) error {
	fullPath, err := url.JoinPath(parentPath, fname)
	if err != nil {
		return fmt.Errorf("url join of %v and %v: %w", parentPath, fname, err)
	}

	resp, err := self.client.GetArchiveFile(ctx, fullPath)
	if err != nil {
		return fmt.Errorf("download error: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("download %v", fullPath)
	if err = self.storage.Save(parentPath, fname, resp.Body); err != nil {
		return fmt.Errorf("download error: %w", err)
	}
	return nil
}

// --------------------------------------------------

func newDownloadDir(datadir string) *downloadDir {
	return &downloadDir{datadir: datadir}
}

type downloadDir struct {
	datadir string
}

func (self *downloadDir) Save(path, fname string, r io.Reader) error {
	if err := self.makePath(path); err != nil {
		return err
	}

	path = filepath.Join(self.datadir, path, fname)
	w, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("failed create %q: %w", path, err)
	}
	defer w.Close()

	_, err = io.Copy(w, r)
	if err != nil {
		return fmt.Errorf("failed write into %q: %w", path, err)
	}

	return nil
}

func (self *downloadDir) makePath(path string) error {
	dir, err := os.Stat(self.datadir)
	if err != nil {
		return fmt.Errorf("makePath %q: %w", self.datadir, err)
	} else if !dir.IsDir() {
		return fmt.Errorf("makePath: %q not a directory", self.datadir)
	}

	path = filepath.Join(self.datadir, path)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("mkdir %q: %w", path, err)
	}

	return nil
}
