package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/guyidk/BookTrack-DevOps-Project/internal/application/book"
	"github.com/guyidk/BookTrack-DevOps-Project/internal/domain/book"
)

// memRepo 内存仓储,驱动完整的handler→用例→领域服务链路
type memRepo struct {
	books     map[string]*book.Book
	updateErr error
	listErr   error
	searchErr error
}

func newMemRepo(books ...*book.Book) *memRepo {
	m := &memRepo{books: make(map[string]*book.Book)}
	for _, b := range books {
		m.books[b.ID] = b
	}
	return m
}

func (m *memRepo) Create(ctx context.Context, b *book.Book) error {
	for _, existing := range m.books {
		if existing.Title == b.Title {
			return book.ErrTitleDuplicate
		}
	}
	m.books[b.ID] = b
	return nil
}

func (m *memRepo) FindByID(ctx context.Context, id string) (*book.Book, error) {
	b, ok := m.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *memRepo) FindByTitle(ctx context.Context, title string) (*book.Book, error) {
	for _, b := range m.books {
		if b.Title == title {
			cp := *b
			return &cp, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (m *memRepo) Update(ctx context.Context, b *book.Book) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.books[b.ID] = b
	return nil
}

func (m *memRepo) List(ctx context.Context) ([]*book.Book, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*book.Book, 0, len(m.books))
	for _, b := range m.books {
		out = append(out, b)
	}
	return out, nil
}

func (m *memRepo) SearchByTitle(ctx context.Context, query string) ([]*book.Book, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	var out []*book.Book
	for _, b := range m.books {
		if strings.Contains(strings.ToLower(b.Title), strings.ToLower(query)) {
			out = append(out, b)
		}
	}
	return out, nil
}

// newTestRouter 组装测试路由(缓存传nil,走降级路径)
func newTestRouter(repo book.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := book.NewService(repo)
	h := NewBookHandler(
		appbook.NewUpdateBookUseCase(svc, nil),
		appbook.NewAddBookUseCase(svc, nil),
		appbook.NewGetBookUseCase(svc),
		appbook.NewListBooksUseCase(svc, nil),
		appbook.NewSearchBooksUseCase(svc),
	)

	r := gin.New()
	r.GET("/books", h.ListBooks)
	r.GET("/books/:id", h.GetBookByID)
	r.GET("/search", h.SearchBooks)
	r.POST("/addBook", h.AddBook)
	r.PUT("/updateBook/:id", h.UpdateBook)
	return r
}

// bookFormBody 构造multipart表单请求体
func bookFormBody(t *testing.T, fields map[string]string, image []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if image != nil {
		fw, err := w.CreateFormFile("image", "cover.jpg")
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func validFields() map[string]string {
	return map[string]string{
		"title":           "New Title",
		"author":          "New Author",
		"isbn":            "9780306406157",
		"genre":           "History",
		"availableCopies": "5",
	}
}

func seedBook() *book.Book {
	return &book.Book{
		ID:              "507f1f77bcf86cd799439011",
		Title:           "Old Title",
		Author:          "Old Author",
		ISBN:            "0306406152",
		Genre:           "Fiction",
		AvailableCopies: 3,
		Image:           "b2xkLWltYWdl",
	}
}

func doUpdate(t *testing.T, r *gin.Engine, id string, fields map[string]string, image []byte) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := bookFormBody(t, fields, image)
	req := httptest.NewRequest(http.MethodPut, "/updateBook/"+id, body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// TestUpdateBookHandler 测试更新接口的状态码和响应体契约
func TestUpdateBookHandler(t *testing.T) {
	t.Run("更新成功返回200", func(t *testing.T) {
		existing := seedBook()
		r := newTestRouter(newMemRepo(existing))

		rec := doUpdate(t, r, existing.ID, validFields(), nil)
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

		var resp struct {
			Message string `json:"message"`
			Book    struct {
				ID              string `json:"id"`
				Title           string `json:"title"`
				AvailableCopies int    `json:"availableCopies"`
				Image           string `json:"image"`
			} `json:"book"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Book updated successfully!", resp.Message)
		assert.Equal(t, existing.ID, resp.Book.ID)
		assert.Equal(t, "New Title", resp.Book.Title)
		assert.Equal(t, 5, resp.Book.AvailableCopies)
		assert.Equal(t, "b2xkLWltYWdl", resp.Book.Image, "未上传图片应保留原封面")
	})

	t.Run("书名超长返回400", func(t *testing.T) {
		existing := seedBook()
		r := newTestRouter(newMemRepo(existing))

		fields := validFields()
		fields["title"] = strings.Repeat("a", 101)

		rec := doUpdate(t, r, existing.ID, fields, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Title must be 100 characters or fewer."}`, rec.Body.String())
	})

	t.Run("作者超长返回400", func(t *testing.T) {
		existing := seedBook()
		r := newTestRouter(newMemRepo(existing))

		fields := validFields()
		fields["author"] = strings.Repeat("b", 151)

		rec := doUpdate(t, r, existing.ID, fields, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Author name must be 150 characters or fewer."}`, rec.Body.String())
	})

	t.Run("在库数量为负返回400", func(t *testing.T) {
		existing := seedBook()
		r := newTestRouter(newMemRepo(existing))

		fields := validFields()
		fields["availableCopies"] = "-1"

		rec := doUpdate(t, r, existing.ID, fields, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Available copies should be more that 0"}`, rec.Body.String())
	})

	t.Run("在库数量非数字返回400", func(t *testing.T) {
		existing := seedBook()
		r := newTestRouter(newMemRepo(existing))

		fields := validFields()
		fields["availableCopies"] = "abc"

		rec := doUpdate(t, r, existing.ID, fields, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("图书不存在返回404", func(t *testing.T) {
		r := newTestRouter(newMemRepo())

		rec := doUpdate(t, r, "000000000000000000000000", validFields(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Book not found"}`, rec.Body.String())
	})

	t.Run("书名与他人重复返回400", func(t *testing.T) {
		existing := seedBook()
		other := &book.Book{ID: "aaaaaaaaaaaaaaaaaaaaaaaa", Title: "Taken Title"}
		r := newTestRouter(newMemRepo(existing, other))

		fields := validFields()
		fields["title"] = "Taken Title"

		rec := doUpdate(t, r, existing.ID, fields, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Title already exists."}`, rec.Body.String())
	})

	t.Run("上传新封面随更新落库", func(t *testing.T) {
		existing := seedBook()
		repo := newMemRepo(existing)
		r := newTestRouter(repo)

		rec := doUpdate(t, r, existing.ID, validFields(), []byte{0xFF, 0xD8, 0xFF, 0xE0})
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

		stored := repo.books[existing.ID]
		assert.NotEqual(t, "b2xkLWltYWdl", stored.Image, "封面应已被替换")
	})

	t.Run("超过16MB的图片返回400", func(t *testing.T) {
		existing := seedBook()
		r := newTestRouter(newMemRepo(existing))

		rec := doUpdate(t, r, existing.ID, validFields(), make([]byte, book.MaxImageBytes+1))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Image size should not exceed 16MB."}`, rec.Body.String())
	})

	t.Run("0字节图片返回400", func(t *testing.T) {
		existing := seedBook()
		r := newTestRouter(newMemRepo(existing))

		rec := doUpdate(t, r, existing.ID, validFields(), []byte{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Uploaded file is invalid."}`, rec.Body.String())
	})

	t.Run("存储故障返回500且不泄露细节", func(t *testing.T) {
		existing := seedBook()
		repo := newMemRepo(existing)
		repo.updateErr = errors.New("connection reset by peer")
		r := newTestRouter(repo)

		rec := doUpdate(t, r, existing.ID, validFields(), nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"An error occurred while updating the book."}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "connection reset", "内部错误细节不应出现在响应里")
	})
}

// TestAddBookHandler 测试新增接口
func TestAddBookHandler(t *testing.T) {
	t.Run("新增成功返回201", func(t *testing.T) {
		repo := newMemRepo()
		r := newTestRouter(repo)

		body, contentType := bookFormBody(t, validFields(), nil)
		req := httptest.NewRequest(http.MethodPost, "/addBook", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
		assert.Contains(t, rec.Body.String(), "Book added successfully!")
		assert.Len(t, repo.books, 1)
	})

	t.Run("ISBN不合法返回400", func(t *testing.T) {
		r := newTestRouter(newMemRepo())

		fields := validFields()
		fields["isbn"] = "1234567890"

		body, contentType := bookFormBody(t, fields, nil)
		req := httptest.NewRequest(http.MethodPost, "/addBook", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid ISBN. Please enter a valid ISBN-10 or ISBN-13."}`, rec.Body.String())
	})
}

// TestListBooksHandler 测试列表接口
func TestListBooksHandler(t *testing.T) {
	t.Run("有数据返回200数组", func(t *testing.T) {
		r := newTestRouter(newMemRepo(seedBook()))

		req := httptest.NewRequest(http.MethodGet, "/books", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var books []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &books))
		assert.Len(t, books, 1)
		assert.Equal(t, "Old Title", books[0]["title"])
	})

	t.Run("空库返回404", func(t *testing.T) {
		r := newTestRouter(newMemRepo())

		req := httptest.NewRequest(http.MethodGet, "/books", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"No books found"}`, rec.Body.String())
	})

	t.Run("查询失败返回500且不泄露细节", func(t *testing.T) {
		repo := newMemRepo()
		repo.listErr = errors.New("table is locked")
		r := newTestRouter(repo)

		req := httptest.NewRequest(http.MethodGet, "/books", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"message":"Server error while fetching books"}`, rec.Body.String())
	})
}

// TestGetBookByIDHandler 测试详情接口(错误体是纯文本)
func TestGetBookByIDHandler(t *testing.T) {
	t.Run("正常查询返回200", func(t *testing.T) {
		existing := seedBook()
		r := newTestRouter(newMemRepo(existing))

		req := httptest.NewRequest(http.MethodGet, "/books/"+existing.ID, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, existing.ID, got["id"])
	})

	t.Run("ID格式不合法返回400纯文本", func(t *testing.T) {
		r := newTestRouter(newMemRepo())

		req := httptest.NewRequest(http.MethodGet, "/books/not-a-hex-id", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid book ID format", rec.Body.String())
	})

	t.Run("图书不存在返回404纯文本", func(t *testing.T) {
		r := newTestRouter(newMemRepo())

		req := httptest.NewRequest(http.MethodGet, "/books/000000000000000000000000", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Book not found", rec.Body.String())
	})
}

// TestSearchBooksHandler 测试搜索接口
func TestSearchBooksHandler(t *testing.T) {
	t.Run("命中返回200", func(t *testing.T) {
		r := newTestRouter(newMemRepo(seedBook()))

		req := httptest.NewRequest(http.MethodGet, "/search?query=old", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var books []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &books))
		assert.Len(t, books, 1, "大小写不敏感匹配应命中")
	})

	t.Run("缺少query参数返回400", func(t *testing.T) {
		r := newTestRouter(newMemRepo(seedBook()))

		req := httptest.NewRequest(http.MethodGet, "/search", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid parameter: \"query\" is required and must be a string."}`, rec.Body.String())
	})

	t.Run("query超过100字符返回400", func(t *testing.T) {
		r := newTestRouter(newMemRepo(seedBook()))

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/search?query=%s", strings.Repeat("a", 101)), nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Query is too long. Max length is 100 characters."}`, rec.Body.String())
	})

	t.Run("无匹配返回404", func(t *testing.T) {
		r := newTestRouter(newMemRepo(seedBook()))

		req := httptest.NewRequest(http.MethodGet, "/search?query=nonexistent", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"No books found matching your search criteria"}`, rec.Body.String())
	})
}
