package commands

import (
	"io"
	"strings"

	"notedock/internal/domain"
)

// fakeRepo records calls and returns canned results
type fakeRepo struct {
	calls []string
	err   error

	saveResult *domain.SaveResult
	recent     []domain.RecentFile
	docs       map[string]string
	uploaded   []byte
}

func (f *fakeRepo) record(call string) error {
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeRepo) SaveDocument(filePath, content string) (*domain.SaveResult, error) {
	if err := f.record("save " + filePath); err != nil {
		return nil, err
	}
	return f.saveResult, nil
}

func (f *fakeRepo) ReadDocument(filePath string) ([]byte, error) {
	if err := f.record("read " + filePath); err != nil {
		return nil, err
	}
	content, ok := f.docs[filePath]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return []byte(content), nil
}

func (f *fakeRepo) ResolveDocument(filePath string) (string, error) {
	if err := f.record("resolve " + filePath); err != nil {
		return "", err
	}
	return "/site" + filePath, nil
}

func (f *fakeRepo) UploadImage(mdPath, fileName string, data io.Reader) (string, error) {
	if err := f.record("upload " + fileName); err != nil {
		return "", err
	}
	b, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	f.uploaded = b
	return "./assets/img.png", nil
}

func (f *fakeRepo) AddCategory(name string) error {
	return f.record("add-category " + name)
}

func (f *fakeRepo) AddNode(name string, parent []string) error {
	return f.record("add-node " + strings.Join(parent, "/") + " " + name)
}

func (f *fakeRepo) AddDocument(name string, parent []string) (string, error) {
	if err := f.record("add-doc " + strings.Join(parent, "/") + " " + name); err != nil {
		return "", err
	}
	return domain.SegmentsPath(append(append([]string{}, parent...), name)), nil
}

func (f *fakeRepo) DeleteNode(segments []string) error {
	return f.record("delete " + strings.Join(segments, "/"))
}

func (f *fakeRepo) Sidebar() (*domain.Sidebar, error) {
	if err := f.record("sidebar"); err != nil {
		return nil, err
	}
	return &domain.Sidebar{}, nil
}

func (f *fakeRepo) Nav() (*domain.Nav, error) {
	if err := f.record("nav"); err != nil {
		return nil, err
	}
	return &domain.Nav{}, nil
}

func (f *fakeRepo) RecentlyModified() ([]domain.RecentFile, error) {
	if err := f.record("recent"); err != nil {
		return nil, err
	}
	return f.recent, nil
}

func (f *fakeRepo) RefreshLanding() (int, error) {
	if err := f.record("refresh-landing"); err != nil {
		return 0, err
	}
	return len(f.recent), nil
}

type fakeOpener struct {
	opened string
}

func (o *fakeOpener) OpenFile(path string) error {
	o.opened = path
	return nil
}

type fakeRenderer struct{}

func (fakeRenderer) Render(src []byte) ([]byte, error) {
	return []byte("<p>" + strings.TrimSpace(string(src)) + "</p>\n"), nil
}
