package report

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-git/go-billy/v6"
	"github.com/go-git/go-billy/v6/memfs"
	"github.com/go-git/go-billy/v6/osfs"
	"github.com/go-git/go-billy/v6/util"
	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/cache"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/go-git/go-git/v6/storage/filesystem"
	"github.com/go-git/go-git/v6/storage/memory"

	"github.com/nickyhof/gadwall/core"
)

var (
	ErrArchiveNotInitialized = errors.New("report archive not initialized")
)

// Archive commits closed reports into a git repository.
type Archive struct {
	repo     *git.Repository
	wt       billy.Filesystem
	identity core.Identity
}

// Revision is one archived version of a report.
type Revision struct {
	Id      string
	When    time.Time
	Author  string // "Name <email>" format
	Message string
}

func (a *Archive) IsInitialized() bool {
	return a != nil && a.repo != nil
}

// NewMemoryArchive creates an archive held entirely in memory.
func NewMemoryArchive(identity core.Identity) (*Archive, error) {
	wt := memfs.New()
	storer := memory.NewStorage()

	repo, err := git.Init(storer, git.WithWorkTree(wt))
	if err != nil {
		return nil, err
	}

	return &Archive{
		repo:     repo,
		wt:       wt,
		identity: identity,
	}, nil
}

// NewFileArchive opens the git repository in baseDir, creating it if needed.
func NewFileArchive(baseDir string, identity core.Identity) (*Archive, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	wt := osfs.New(baseDir)
	fs, err := wt.Chroot(".git")
	if err != nil {
		return nil, err
	}

	storer := filesystem.NewStorageWithOptions(
		fs,
		cache.NewObjectLRUDefault(),
		filesystem.Options{ExclusiveAccess: true})

	var repo *git.Repository
	if _, statErr := os.Stat(fs.Root()); statErr != nil {
		repo, err = git.Init(storer, git.WithWorkTree(wt))
	} else {
		repo, err = git.Open(storer, wt)
	}
	if err != nil {
		return nil, err
	}

	return &Archive{
		repo:     repo,
		wt:       wt,
		identity: identity,
	}, nil
}

// Commit stores data under name and records it as a new commit.
func (a *Archive) Commit(name string, data []byte, message string) (Revision, error) {
	if !a.IsInitialized() {
		return Revision{}, ErrArchiveNotInitialized
	}

	if err := util.WriteFile(a.wt, name, data, 0644); err != nil {
		return Revision{}, fmt.Errorf("failed to write %s: %w", name, err)
	}

	wt, err := a.repo.Worktree()
	if err != nil {
		return Revision{}, err
	}
	if _, err := wt.Add(name); err != nil {
		return Revision{}, fmt.Errorf("failed to stage %s: %w", name, err)
	}

	sig := object.Signature{
		Name:  a.identity.Name,
		Email: a.identity.Email,
		When:  time.Now(),
	}
	hash, err := wt.Commit(message, &git.CommitOptions{
		Author:    &sig,
		Committer: &sig,
	})
	if err != nil {
		return Revision{}, fmt.Errorf("failed to commit %s: %w", name, err)
	}

	return Revision{
		Id:      hash.String(),
		When:    sig.When,
		Author:  fmt.Sprintf("%s <%s>", sig.Name, sig.Email),
		Message: message,
	}, nil
}

// Read returns the latest archived content of name.
func (a *Archive) Read(name string) ([]byte, error) {
	if !a.IsInitialized() {
		return nil, ErrArchiveNotInitialized
	}

	headRef, err := a.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("no commits yet")
	}

	commit, err := a.repo.CommitObject(headRef.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to get commit: %w", err)
	}

	file, err := commit.File(name)
	if err != nil {
		return nil, fmt.Errorf("file not found: %w", err)
	}

	content, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to read contents: %w", err)
	}

	return []byte(content), nil
}

// Revisions lists the commits of the archive, newest first.
func (a *Archive) Revisions() ([]Revision, error) {
	if !a.IsInitialized() {
		return nil, ErrArchiveNotInitialized
	}

	iter, err := a.repo.Log(&git.LogOptions{})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var revisions []Revision
	err = iter.ForEach(func(c *object.Commit) error {
		revisions = append(revisions, Revision{
			Id:      c.Hash.String(),
			When:    c.Author.When,
			Author:  fmt.Sprintf("%s <%s>", c.Author.Name, c.Author.Email),
			Message: c.Message,
		})
		return nil
	})
	return revisions, err
}
