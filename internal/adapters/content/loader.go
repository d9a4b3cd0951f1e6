// Package content implements the static content store. Collections are
// YAML files and blog posts are Markdown files with YAML front matter,
// compiled into the binary and loaded once at startup.
package content

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/portfolio/internal/domain"
)

const (
	profileFile = "profile.yaml"
	postsDir    = "posts"

	wordsPerMinute = 200
)

//go:embed data
var embedded embed.FS

// ErrNoContent is returned when a content tree has no profile.
var ErrNoContent = errors.New("content: profile missing")

// Embedded returns the content tree compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err) // the embed directive guarantees "data" exists
	}

	return sub
}

// record is the on-disk shape of a project, job, or education entry.
// Each collection names its free-text field differently.
type record struct {
	ID           string   `yaml:"id"`
	Slug         string   `yaml:"slug"`
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Summary      string   `yaml:"summary"`
	Category     string   `yaml:"category"`
	Tags         []string `yaml:"tags"`
	Technologies []string `yaml:"technologies"`
	Company      string   `yaml:"company"`
	Institution  string   `yaml:"institution"`
	Location     string   `yaml:"location"`
	Highlights   []string `yaml:"highlights"`
	URL          string   `yaml:"url"`
	Start        string   `yaml:"start"`
	End          string   `yaml:"end"`
	Featured     bool     `yaml:"featured"`
}

// postMeta is the front matter of a Markdown post.
type postMeta struct {
	ID       string   `yaml:"id"`
	Slug     string   `yaml:"slug"`
	Title    string   `yaml:"title"`
	Date     string   `yaml:"date"`
	Category string   `yaml:"category"`
	Tags     []string `yaml:"tags"`
	Excerpt  string   `yaml:"excerpt"`
}

type profileDoc struct {
	Name      string   `yaml:"name"`
	Headline  string   `yaml:"headline"`
	Location  string   `yaml:"location"`
	Email     string   `yaml:"email"`
	Available bool     `yaml:"available"`
	Bio       []string `yaml:"bio"`
	Links     []struct {
		Label string `yaml:"label"`
		URL   string `yaml:"url"`
	} `yaml:"links"`
	Stats []struct {
		Label  string `yaml:"label"`
		Value  int    `yaml:"value"`
		Suffix string `yaml:"suffix"`
	} `yaml:"stats"`
}

// Load reads every collection from fsys in parallel and builds a Store.
// A missing collection file is an empty collection; a missing profile is
// ErrNoContent.
func Load(ctx context.Context, fsys fs.FS) (*Store, error) {
	var (
		profile domain.Profile
		posts   []domain.Item
		others  = make([][]domain.Item, 3)
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := loadProfile(fsys)
		profile = p

		return err
	})

	g.Go(func() error {
		items, err := loadPosts(ctx, fsys)
		posts = items

		return err
	})

	for i, kind := range []domain.Kind{domain.KindProject, domain.KindJob, domain.KindEducation} {
		g.Go(func() error {
			items, err := loadCollection(fsys, kind)
			others[i] = items

			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewStore(profile, map[domain.Kind][]domain.Item{
		domain.KindPost:      posts,
		domain.KindProject:   others[0],
		domain.KindJob:       others[1],
		domain.KindEducation: others[2],
	})
}

func loadProfile(fsys fs.FS) (domain.Profile, error) {
	data, err := fs.ReadFile(fsys, profileFile)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Profile{}, ErrNoContent
	}

	if err != nil {
		return domain.Profile{}, fmt.Errorf("reading %s: %w", profileFile, err)
	}

	var doc profileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.Profile{}, fmt.Errorf("parsing %s: %w", profileFile, err)
	}

	if doc.Name == "" {
		return domain.Profile{}, fmt.Errorf("parsing %s: %w", profileFile, ErrNoContent)
	}

	p := domain.Profile{
		Name:      doc.Name,
		Headline:  doc.Headline,
		Location:  doc.Location,
		Email:     doc.Email,
		Bio:       doc.Bio,
		Available: doc.Available,
	}

	for _, l := range doc.Links {
		p.Links = append(p.Links, domain.Link{Label: l.Label, URL: l.URL})
	}

	for _, s := range doc.Stats {
		p.Stats = append(p.Stats, domain.Stat{Label: s.Label, Value: s.Value, Suffix: s.Suffix})
	}

	return p, nil
}

func loadCollection(fsys fs.FS, kind domain.Kind) ([]domain.Item, error) {
	name := string(kind) + ".yaml"

	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	var records []record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	items := make([]domain.Item, 0, len(records))

	for i := range records {
		item, err := records[i].item(kind)
		if err != nil {
			return nil, fmt.Errorf("%s entry %d: %w", name, i, err)
		}

		items = append(items, item)
	}

	return items, nil
}

func (r *record) item(kind domain.Kind) (domain.Item, error) {
	start, err := parseDate(r.Start)
	if err != nil {
		return domain.Item{}, fmt.Errorf("start: %w", err)
	}

	end, err := parseDate(r.End)
	if err != nil {
		return domain.Item{}, fmt.Errorf("end: %w", err)
	}

	return domain.Item{
		ID:           r.ID,
		Kind:         kind,
		Slug:         r.Slug,
		Title:        r.Title,
		Excerpt:      firstNonEmpty(r.Description, r.Summary),
		Category:     r.Category,
		Tags:         slices.Concat(r.Tags, r.Technologies),
		Organization: firstNonEmpty(r.Company, r.Institution),
		Location:     r.Location,
		Highlights:   r.Highlights,
		URL:          r.URL,
		StartDate:    start,
		EndDate:      end,
		Featured:     r.Featured,
	}, nil
}

// newMarkdown mirrors the renderer settings used for every post body.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)
}

func loadPosts(ctx context.Context, fsys fs.FS) ([]domain.Item, error) {
	names, err := fs.Glob(fsys, path.Join(postsDir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	md := newMarkdown()
	posts := make([]domain.Item, 0, len(names))

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		post, err := loadPost(fsys, md, name)
		if err != nil {
			return nil, err
		}

		posts = append(posts, post)
	}

	// Newest first; ties keep file order.
	slices.SortStableFunc(posts, func(a, b domain.Item) int {
		return b.Published.Compare(a.Published)
	})

	return posts, nil
}

func loadPost(fsys fs.FS, md goldmark.Markdown, name string) (domain.Item, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return domain.Item{}, fmt.Errorf("reading %s: %w", name, err)
	}

	var meta postMeta

	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return domain.Item{}, fmt.Errorf("parsing front matter of %s: %w", name, err)
	}

	published, err := parseDate(meta.Date)
	if err != nil {
		return domain.Item{}, fmt.Errorf("%s date: %w", name, err)
	}

	var html bytes.Buffer
	if err := md.Convert(body, &html); err != nil {
		return domain.Item{}, fmt.Errorf("rendering %s: %w", name, err)
	}

	base := strings.TrimSuffix(path.Base(name), ".md")

	return domain.Item{
		ID:             firstNonEmpty(meta.ID, base),
		Kind:           domain.KindPost,
		Slug:           firstNonEmpty(meta.Slug, base),
		Title:          meta.Title,
		Excerpt:        meta.Excerpt,
		Category:       meta.Category,
		Tags:           meta.Tags,
		Published:      published,
		ReadingMinutes: readingMinutes(body),
		BodyHTML:       html.String(),
	}, nil
}

func readingMinutes(body []byte) int {
	words := len(strings.Fields(string(body)))
	return max(1, int(math.Ceil(float64(words)/wordsPerMinute)))
}

var dateLayouts = []string{"2006-01-02", "2006-01", time.RFC3339}

// parseDate accepts full dates, year-month, or RFC 3339. Empty is zero.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
