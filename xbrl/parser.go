package xbrl

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	gocache "github.com/patrickmn/go-cache"
)

// Files is one filing's XBRL file set. Instance is required; every
// linkbase is optional. Standalone linkbases take precedence over
// ones embedded in the schema.
type Files struct {
	Schema       string
	Presentation string
	Calculation  string
	Definition   string
	Label        string
	Instance     string

	// Names for error reporting; empty names fall back to the kind.
	SchemaName   string
	InstanceName string
}

// XBRL is one parsed filing: catalog, contexts, facts, taxonomy trees
// and derived periods. Read-only after Parse returns; no internal
// synchronization beyond that discipline.
type XBRL struct {
	log   *slog.Logger
	types StatementTypes

	catalog        Catalog
	contexts       map[string]*Context
	units          map[string]*Unit
	facts          map[string]*Fact
	factsByElement map[string][]*Fact

	presentation map[string]*PresentationTree
	calculation  map[string]*CalculationTree
	tables       []*Table
	axes         map[string]*Axis
	domains      map[string]*Domain
	roleDefs     map[string]string

	periods *periodSet

	entity     EntityInfo
	entityOnce sync.Once
}

type Option func(x *XBRL)

func WithLogger(l *slog.Logger) Option {
	return func(x *XBRL) { x.log = l }
}

// WithStatementTypes swaps the statement-type registry, e.g. for an
// ifrs taxonomy.
func WithStatementTypes(types StatementTypes) Option {
	return func(x *XBRL) { x.types = types }
}

// Parse builds the whole model: catalog from schema and labels,
// taxonomy trees, contexts and facts, then the one-shot
// calculation-weight sign correction and period derivation.
func Parse(files Files, opts ...Option) (*XBRL, error) {
	x := &XBRL{
		catalog:        make(Catalog),
		contexts:       make(map[string]*Context),
		units:          make(map[string]*Unit),
		facts:          make(map[string]*Fact),
		factsByElement: make(map[string][]*Fact),
		presentation:   make(map[string]*PresentationTree),
		calculation:    make(map[string]*CalculationTree),
		axes:           make(map[string]*Axis),
		domains:        make(map[string]*Domain),
		roleDefs:       make(map[string]string),
	}
	for _, fn := range opts {
		fn(x)
	}
	if x.log == nil {
		x.log = slog.Default()
	}
	if x.types == nil {
		x.types = DefaultStatementTypes()
	}

	if err := x.parse(files); err != nil {
		return nil, err
	}
	return x, nil
}

func (self *XBRL) parse(files Files) error {
	var embedded EmbeddedLinkbases
	if files.Schema != "" {
		var err error
		embedded, err = self.parseSchema(
			nameOr(files.SchemaName, "schema"), files.Schema)
		if err != nil {
			return err
		}
	}

	// Standalone linkbase content wins over the embedded one of the
	// same kind.
	label := firstOf(files.Label, embedded.Label)
	pre := firstOf(files.Presentation, embedded.Presentation)
	cal := firstOf(files.Calculation, embedded.Calculation)
	def := firstOf(files.Definition, embedded.Definition)

	if label != "" {
		if err := self.parseLabels("label linkbase", label); err != nil {
			return err
		}
	}
	if pre != "" {
		if err := self.parsePresentation("presentation linkbase", pre); err != nil {
			return err
		}
	}
	if cal != "" {
		if err := self.parseCalculation("calculation linkbase", cal); err != nil {
			return err
		}
	}
	if def != "" {
		if err := self.parseDefinition("definition linkbase", def); err != nil {
			return err
		}
	}

	if files.Instance != "" {
		name := nameOr(files.InstanceName, "instance")
		if err := self.parseInstance(name, files.Instance); err != nil {
			return err
		}
	}

	self.applyCalculationWeights()
	self.periods = buildPeriods(self.contexts)
	return nil
}

func nameOr(name, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Fact returns the fact for an element in a context; the element id
// may use either separator form.
func (self *XBRL) Fact(elementID, contextID string) (*Fact, bool) {
	f, ok := self.facts[NormalizeID(elementID)+"|"+contextID]
	return f, ok
}

func (self *XBRL) FactsFor(elementID string) []*Fact {
	return self.factsByElement[NormalizeID(elementID)]
}

func (self *XBRL) Catalog() Catalog { return self.catalog }

func (self *XBRL) Context(id string) (*Context, bool) {
	c, ok := self.contexts[id]
	return c, ok
}

func (self *XBRL) Tables() []*Table { return self.tables }

func (self *XBRL) PresentationRoles() []string { return self.sortedRoles() }

func (self *XBRL) CalculationTree(role string) (*CalculationTree, bool) {
	t, ok := self.calculation[role]
	return t, ok
}

func (self *XBRL) PresentationTree(role string) (*PresentationTree, bool) {
	t, ok := self.presentation[role]
	return t, ok
}

// --------------------------------------------------

// instanceProbeSize bounds the sniff for "<xbrl" when classifying an
// unsuffixed .xml file as the instance document.
const instanceProbeSize = 2000

// parsedFilings memoizes default-option ParseDir results for the
// process lifetime, keyed by content hash. Distinct inputs never
// collide; a parsed XBRL is read-only after construction, so sharing
// is safe.
var parsedFilings = gocache.New(gocache.NoExpiration, 0)

// ParseDir reads one filing's directory, classifying files by EDGAR
// naming convention: _pre.xml, _cal.xml, _def.xml, _lab.xml, .xsd and
// an instance document recognized by "<xbrl" within its head.
//
// Options change what Parse produces from the same content, so any
// option bypasses the memoization entirely.
func ParseDir(dir string, opts ...Option) (*XBRL, error) {
	files, err := ClassifyDir(dir)
	if err != nil {
		return nil, err
	}
	if len(opts) > 0 {
		return Parse(files, opts...)
	}

	key := strconv.FormatUint(filesDigest(&files), 16)
	if cached, ok := parsedFilings.Get(key); ok {
		return cached.(*XBRL), nil
	}

	x, err := Parse(files)
	if err != nil {
		return nil, err
	}
	parsedFilings.Set(key, x, gocache.NoExpiration)
	return x, nil
}

func filesDigest(files *Files) uint64 {
	d := xxhash.New()
	for _, content := range []string{
		files.Schema, files.Presentation, files.Calculation,
		files.Definition, files.Label, files.Instance,
	} {
		_, _ = d.WriteString(content)
		_, _ = d.WriteString("\x00")
	}
	return d.Sum64()
}

// ClassifyDir maps a filing directory's files onto the XBRL file
// roles by name suffix convention.
func ClassifyDir(dir string) (Files, error) {
	var files Files
	entries, err := os.ReadDir(dir)
	if err != nil {
		return files, fmt.Errorf("read filing dir %q: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		switch {
		case strings.HasSuffix(name, "_pre.xml"):
			err = readInto(&files.Presentation, path)
		case strings.HasSuffix(name, "_cal.xml"):
			err = readInto(&files.Calculation, path)
		case strings.HasSuffix(name, "_def.xml"):
			err = readInto(&files.Definition, path)
		case strings.HasSuffix(name, "_lab.xml"):
			err = readInto(&files.Label, path)
		case strings.HasSuffix(name, ".xsd"):
			if err = readInto(&files.Schema, path); err == nil {
				files.SchemaName = name
			}
		case strings.HasSuffix(name, ".xml") && files.Instance == "":
			if err = classifyInstance(&files, path, name); err != nil {
				return files, err
			}
			continue
		default:
			continue
		}
		if err != nil {
			return files, err
		}
	}

	if files.Instance == "" {
		return files, fmt.Errorf("no instance document found in %q", dir)
	}
	return files, nil
}

func classifyInstance(files *Files, path, name string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}
	if SniffInstance(string(content)) {
		files.Instance = string(content)
		files.InstanceName = name
	}
	return nil
}

// SniffInstance reports whether content looks like an XBRL instance
// document. Only the leading bytes are inspected.
func SniffInstance(content string) bool {
	if len(content) > instanceProbeSize {
		content = content[:instanceProbeSize]
	}
	return strings.Contains(content, "<xbrl")
}

func readInto(dst *string, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}
	*dst = string(content)
	return nil
}
