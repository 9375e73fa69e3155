package client

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/edgarlab/edgar/xbrl"
)

// XBRLFiles fetches the XBRL file set of one filing directory under the
// EDGAR archives, like "data/320193/000032019323000106". Files are
// classified by EDGAR naming convention, the same way local filing
// directories are.
func (self *Client) XBRLFiles(ctx context.Context, path string,
) (xbrl.Files, error) {
	var files xbrl.Files
	index, err := self.IndexArchive(ctx, path)
	if err != nil {
		return files, fmt.Errorf("index filing %q: %w", path, err)
	}

	items := index.Items()
	names := make([]string, 0, len(items))
	for i := range items {
		names = append(names, items[i].Name)
	}
	sort.Strings(names)

	for _, name := range names {
		switch {
		case strings.HasSuffix(name, "_pre.xml"):
			err = self.fetchInto(ctx, &files.Presentation, path, name)
		case strings.HasSuffix(name, "_cal.xml"):
			err = self.fetchInto(ctx, &files.Calculation, path, name)
		case strings.HasSuffix(name, "_def.xml"):
			err = self.fetchInto(ctx, &files.Definition, path, name)
		case strings.HasSuffix(name, "_lab.xml"):
			err = self.fetchInto(ctx, &files.Label, path, name)
		case strings.HasSuffix(name, ".xsd"):
			if err = self.fetchInto(ctx, &files.Schema, path, name); err == nil {
				files.SchemaName = name
			}
		case strings.HasSuffix(name, ".xml") && files.Instance == "":
			err = self.fetchInstance(ctx, &files, path, name)
		default:
			continue
		}
		if err != nil {
			return files, err
		}
	}

	if files.Instance == "" {
		return files, fmt.Errorf("no instance document found in %q", path)
	}
	return files, nil
}

func (self *Client) fetchInto(ctx context.Context, dst *string,
	path, name string,
) error {
	content, err := self.GetArchiveContent(ctx, path+"/"+name)
	if err != nil {
		return fmt.Errorf("fetch %q from %q: %w", name, path, err)
	}
	*dst = string(content)
	return nil
}

// fetchInstance fetches an unsuffixed .xml candidate and keeps it as
// the instance document only when it sniffs like one.
func (self *Client) fetchInstance(ctx context.Context, files *xbrl.Files,
	path, name string,
) error {
	var content string
	if err := self.fetchInto(ctx, &content, path, name); err != nil {
		return err
	}
	if xbrl.SniffInstance(content) {
		files.Instance = content
		files.InstanceName = name
	}
	return nil
}
