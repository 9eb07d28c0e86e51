// Package casefile runs table driven cases stored in YAML files. Each file
// holds a default domain type and a list of cases:
//
//	type: u8
//	cases:
//	  - name: overlapping
//	    op: union
//	    args: ["2..=44", "5..=50"]
//	    expect:
//	      output: "[ 2..=50 ]"
//
// In update mode the observed output and error of every case are written back
// into the file, keeping its comments and key order.
package casefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Case is one operation with its expected result.
type Case struct {
	Name   string   `yaml:"name"`
	Type   string   `yaml:"type"`
	Op     string   `yaml:"op"`
	Args   []string `yaml:"args"`
	Expect struct {
		Output string `yaml:"output"`
		Error  string `yaml:"error"`
	} `yaml:"expect"`
}

// File is one YAML case file.
type File struct {
	Name  string `yaml:"-"`
	Type  string `yaml:"type"`
	Cases []Case `yaml:"cases"`

	path      string
	root      *yaml.Node
	caseNodes []*yaml.Node
}

// Runner evaluates c in domain typ and returns its textual output.
type Runner func(typ string, c *Case) (string, error)

// Suite is every case file of a directory.
type Suite struct {
	files []*File
	mu    sync.Mutex
}

// Read loads every .yaml and .yml file under dir.
func Read(dir string) (*Suite, error) {
	suite := &Suite{}
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		f, err := readFile(path)
		if err != nil {
			return err
		}
		suite.files = append(suite.files, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return suite, nil
}

func readFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	if len(root.Content) == 0 {
		return nil, errors.Errorf("%s: empty yaml", path)
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, errors.Errorf("%s: top level must be a mapping", path)
	}
	casesNode := lookup(doc, "cases")
	if casesNode == nil || casesNode.Kind != yaml.SequenceNode {
		return nil, errors.Errorf("%s: missing 'cases' sequence", path)
	}

	f := &File{
		Name:      filepath.Base(path),
		path:      path,
		root:      &root,
		caseNodes: casesNode.Content,
	}
	if err := doc.Decode(f); err != nil {
		return nil, errors.Wrapf(err, "%s: decode", path)
	}
	if len(f.Cases) != len(f.caseNodes) {
		return nil, errors.Errorf("%s: case count mismatch between yaml node and struct", path)
	}
	return f, nil
}

// Files returns the loaded files.
func (s *Suite) Files() []*File {
	return s.files
}

// Run evaluates every case with run as a subtest. With update set, mismatches
// are written back to the case file instead of failing.
func (s *Suite) Run(t *testing.T, update bool, run Runner) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.files {
		t.Run(f.Name, func(t *testing.T) {
			for i := range f.Cases {
				c := &f.Cases[i]
				name := c.Name
				if name == "" {
					name = fmt.Sprintf("Case-%d", i)
				}
				t.Run(name, func(t *testing.T) {
					s.runCase(t, f, i, update, run)
				})
			}
		})
	}
}

func (s *Suite) runCase(t *testing.T, f *File, idx int, update bool, run Runner) {
	c := &f.Cases[idx]
	typ := c.Type
	if typ == "" {
		typ = f.Type
	}

	var output, errText string
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panic: %v", r)
			}
		}()
		out, err := run(typ, c)
		output = out
		if err != nil {
			errText = err.Error()
		}
	}()

	changes := f.apply(t, idx, output, errText, update)
	if update && len(changes) > 0 {
		if err := f.persist(); err != nil {
			t.Fatalf("persist %s: %v", f.path, err)
		}
		t.Logf("casefile: updated %s (%s): %s", f.path, c.Name, strings.Join(changes, "; "))
	}
}

func (f *File) apply(t *testing.T, idx int, output, errText string, update bool) []string {
	c := &f.Cases[idx]
	results := []struct {
		key  string
		want *string
		got  string
	}{
		{"output", &c.Expect.Output, output},
		{"error", &c.Expect.Error, errText},
	}

	var changes []string
	for _, r := range results {
		if *r.want == r.got {
			continue
		}
		if !update {
			t.Errorf("%s %v: %s mismatch:\nExpected: %q\nActual:   %q", c.Op, c.Args, r.key, *r.want, r.got)
			continue
		}
		changes = append(changes, fmt.Sprintf("%s %s -> %s", r.key, brief(*r.want), brief(r.got)))
		*r.want = r.got
		caseNode{f.caseNodes[idx]}.record(r.key, r.got)
	}
	return changes
}

// persist rewrites the file through a temporary sibling so a failed encode
// leaves the original intact.
func (f *File) persist() error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".casefile-*")
	if err != nil {
		return errors.WithStack(err)
	}
	defer os.Remove(tmp.Name())

	enc := yaml.NewEncoder(tmp)
	enc.SetIndent(2)
	err = enc.Encode(f.root)
	if cerr := enc.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = tmp.Chmod(0o644)
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Wrapf(err, "encode %s", f.path)
	}
	return errors.WithStack(os.Rename(tmp.Name(), f.path))
}

// caseNode is the mapping behind one entry of the cases sequence.
type caseNode struct{ *yaml.Node }

// expect returns the expect mapping of the case, adding one when the key is
// absent or holds a non-mapping value.
func (n caseNode) expect() *yaml.Node {
	e := lookup(n.Node, "expect")
	if e == nil {
		e = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		n.Content = append(n.Content, str("expect"), e)
	} else if e.Kind != yaml.MappingNode {
		*e = yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", LineComment: e.LineComment}
	}
	return e
}

// record stores value under expect.key, keeping any comment on the old value.
func (n caseNode) record(key, value string) {
	e := n.expect()
	v := str(value)
	if old := lookup(e, key); old != nil {
		v.HeadComment, v.LineComment, v.FootComment = old.HeadComment, old.LineComment, old.FootComment
		*old = *v
		return
	}
	e.Content = append(e.Content, str(key), v)
}

// lookup returns the value stored under key in mapping m, or nil.
func lookup(m *yaml.Node, key string) *yaml.Node {
	if m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 1; i < len(m.Content); i += 2 {
		if m.Content[i-1].Value == key {
			return m.Content[i]
		}
	}
	return nil
}

// str builds a string scalar. Line breaks alone are quoted, a plain
// encoding would turn them into an empty literal block.
func str(value string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
	if value != "" && strings.Trim(value, "\r\n") == "" {
		n.Style = yaml.DoubleQuotedStyle
	}
	return n
}

// brief quotes s for the update log, cut to a readable length.
func brief(s string) string {
	q := strconv.Quote(s)
	if len(q) > 60 {
		return q[:56] + `..."`
	}
	return q
}
