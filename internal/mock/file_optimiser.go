package mock

import "io"

// FileOptimiser implements file optimisation operations for tests.
type FileOptimiser struct {
	CompressOut []byte
	CompressErr error

	CompressCalled bool
	GotMimeType    string
}

func (m *FileOptimiser) Compress(mimeType string, r io.Reader) ([]byte, error) {
	m.CompressCalled = true
	m.GotMimeType = mimeType
	if m.CompressErr != nil {
		return nil, m.CompressErr
	}
	if m.CompressOut != nil {
		return m.CompressOut, nil
	}
	data, _ := io.ReadAll(r)
	return data, nil
}

// PageCounter implements PDF page counting for tests.
type PageCounter struct {
	PagesOut int
	Err      error
	Called   bool
}

func (m *PageCounter) CountPages(data []byte) (int, error) {
	m.Called = true
	if m.Err != nil {
		return 0, m.Err
	}
	return m.PagesOut, nil
}
