package handler

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	appbook "github.com/guyidk/BookTrack-DevOps-Project/internal/application/book"
	"github.com/guyidk/BookTrack-DevOps-Project/internal/domain/book"
	"github.com/guyidk/BookTrack-DevOps-Project/internal/interface/http/dto"
	apperrors "github.com/guyidk/BookTrack-DevOps-Project/pkg/errors"
	"github.com/guyidk/BookTrack-DevOps-Project/pkg/metrics"
	"github.com/guyidk/BookTrack-DevOps-Project/pkg/response"
	"github.com/guyidk/BookTrack-DevOps-Project/pkg/validate"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	updateBookUseCase  *appbook.UpdateBookUseCase
	addBookUseCase     *appbook.AddBookUseCase
	getBookUseCase     *appbook.GetBookUseCase
	listBooksUseCase   *appbook.ListBooksUseCase
	searchBooksUseCase *appbook.SearchBooksUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	updateBookUseCase *appbook.UpdateBookUseCase,
	addBookUseCase *appbook.AddBookUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
	searchBooksUseCase *appbook.SearchBooksUseCase,
) *BookHandler {
	return &BookHandler{
		updateBookUseCase:  updateBookUseCase,
		addBookUseCase:     addBookUseCase,
		getBookUseCase:     getBookUseCase,
		listBooksUseCase:   listBooksUseCase,
		searchBooksUseCase: searchBooksUseCase,
	}
}

// UpdateBook 更新图书
// @Summary      更新图书
// @Description  按文档ID整体更新图书信息,可选上传新封面
// @Tags         图书
// @Accept       mpfd
// @Produce      json
// @Param        id path string true "文档ID"
// @Param        title formData string true "书名(<=100字符)"
// @Param        author formData string true "作者(<=150字符)"
// @Param        isbn formData string true "ISBN号"
// @Param        genre formData string true "分类"
// @Param        availableCopies formData int true "在库数量(>=0)"
// @Param        image formData file false "封面图片(<=16MB)"
// @Success      200 {object} dto.UpdateBookResponse
// @Failure      400 {object} dto.ErrorResponse "字段校验失败/标题重复/图片不合法"
// @Failure      404 {object} dto.ErrorResponse "图书不存在"
// @Failure      500 {object} dto.ErrorResponse
// @Router       /updateBook/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	// 1. 解析表单字段
	form, err := parseBookForm(c)
	if err != nil {
		countUpdate("rejected")
		response.Error(c, err)
		return
	}

	// 2. 调用应用层用例
	result, err := h.updateBookUseCase.Execute(c.Request.Context(), appbook.UpdateBookRequest{
		ID:              c.Param("id"),
		Title:           form.title,
		Author:          form.author,
		ISBN:            form.isbn,
		Genre:           form.genre,
		AvailableCopies: form.availableCopies,
		Image:           form.image,
		ImageProvided:   form.imageProvided,
	})
	if err != nil {
		appErr := apperrors.GetAppError(err)
		if appErr.Code >= apperrors.ErrCodeInternal {
			// 内部错误:详细原因只进日志,客户端只看到统一文案
			log.Println("Error updating book:", err)
			countUpdate("failure")
		} else {
			countUpdate("rejected")
		}
		response.Error(c, err)
		return
	}

	// 3. 构建HTTP响应
	countUpdate("success")
	response.OK(c, &dto.UpdateBookResponse{
		Message: "Book updated successfully!",
		Book:    dto.FromBookDTO(result),
	})
}

// AddBook 新增图书
// @Summary      新增图书
// @Description  上架一本新书,可选上传封面
// @Tags         图书
// @Accept       mpfd
// @Produce      json
// @Param        title formData string true "书名(<=100字符,全局唯一)"
// @Param        author formData string true "作者(<=150字符)"
// @Param        isbn formData string true "ISBN-10或ISBN-13"
// @Param        genre formData string true "分类"
// @Param        availableCopies formData int true "在库数量(>=0)"
// @Param        image formData file false "封面图片(<=16MB)"
// @Success      201 {object} dto.AddBookResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /addBook [post]
func (h *BookHandler) AddBook(c *gin.Context) {
	form, err := parseBookForm(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.addBookUseCase.Execute(c.Request.Context(), appbook.AddBookRequest{
		Title:           form.title,
		Author:          form.author,
		ISBN:            form.isbn,
		Genre:           form.genre,
		AvailableCopies: form.availableCopies,
		Image:           form.image,
		ImageProvided:   form.imageProvided,
	})
	if err != nil {
		if apperrors.GetAppError(err).Code >= apperrors.ErrCodeInternal {
			log.Println("Error adding book:", err)
		}
		response.Error(c, err)
		return
	}

	if metrics.BooksCreatedTotal != nil {
		metrics.BooksCreatedTotal.Inc()
	}
	response.Created(c, &dto.AddBookResponse{
		Message: "Book added successfully!",
		Book:    dto.FromBookDTO(result),
	})
}

// ListBooks 查询全部图书
// @Summary      图书列表
// @Description  返回全部图书(含封面base64),列表为空时返回404
// @Tags         图书
// @Produce      json
// @Success      200 {array} dto.BookPayload
// @Failure      404 {object} map[string]string "No books found"
// @Failure      500 {object} map[string]string
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.listBooksUseCase.Execute(c.Request.Context())
	if err != nil {
		log.Println("Error fetching books:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching books"})
		return
	}

	// 空列表按约定返回404
	if len(books) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No books found"})
		return
	}

	response.OK(c, dto.FromBookDTOs(books))
}

// GetBookByID 按文档ID查询图书
// @Summary      图书详情
// @Description  按24位十六进制文档ID查询;该接口的错误体是纯文本(历史契约)
// @Tags         图书
// @Produce      json
// @Param        id path string true "文档ID"
// @Success      200 {object} dto.BookPayload
// @Failure      400 {string} string "Invalid book ID format"
// @Failure      404 {string} string "Book not found"
// @Failure      500 {string} string "Server error"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	// 详情接口先做ID格式校验(更新接口不校验,查不到即404)
	if !validate.BookID(id) {
		response.Text(c, http.StatusBadRequest, "Invalid book ID format")
		return
	}

	b, err := h.getBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.Text(c, http.StatusNotFound, "Book not found")
			return
		}
		log.Println("Error fetching book by ID:", err)
		response.Text(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.OK(c, dto.FromBookDTO(b))
}

// SearchBooks 按书名搜索
// @Summary      图书搜索
// @Description  书名子串匹配,不区分大小写
// @Tags         图书
// @Produce      json
// @Param        query query string true "搜索关键词(<=100字符)"
// @Success      200 {array} dto.BookPayload
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /search [get]
func (h *BookHandler) SearchBooks(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.ErrorMessage(c, http.StatusBadRequest, `Invalid parameter: "query" is required and must be a string.`)
		return
	}
	if len(query) > 100 {
		response.ErrorMessage(c, http.StatusBadRequest, "Query is too long. Max length is 100 characters.")
		return
	}

	books, err := h.searchBooksUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		log.Println("Error searching books:", err)
		response.Text(c, http.StatusInternalServerError, "An error occurred while searching for books.")
		return
	}

	if len(books) == 0 {
		response.ErrorMessage(c, http.StatusNotFound, "No books found matching your search criteria")
		return
	}

	response.OK(c, dto.FromBookDTOs(books))
}

// =========================================
// 辅助函数
// =========================================

// bookForm 新增/更新共用的表单字段
type bookForm struct {
	title           string
	author          string
	isbn            string
	genre           string
	availableCopies int
	image           []byte
	imageProvided   bool
}

// parseBookForm 解析multipart/url-encoded表单
// 设计说明:
// 1. 字段校验(长度/范围)在领域层,这里只做类型转换
// 2. availableCopies非数字视为参数错误(400)
// 3. 文件字段缺席是合法状态(保留原封面),imageProvided=false
func parseBookForm(c *gin.Context) (*bookForm, error) {
	form := &bookForm{
		title:  c.PostForm("title"),
		author: c.PostForm("author"),
		isbn:   c.PostForm("isbn"),
		genre:  c.PostForm("genre"),
	}

	copies, err := strconv.Atoi(strings.TrimSpace(c.PostForm("availableCopies")))
	if err != nil {
		return nil, apperrors.ErrInvalidParams
	}
	form.availableCopies = copies

	fileHeader, err := c.FormFile("image")
	if err != nil {
		// 没有文件字段:合法,表示不更换封面
		return form, nil
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.Wrap(err, "An error occurred while reading the uploaded file.")
	}
	defer f.Close()

	// 整个文件读入内存,封面随图书一起存库(无对象存储)
	// 多读1字节以便区分"刚好16MB"和"超过16MB"
	data, err := io.ReadAll(io.LimitReader(f, book.MaxImageBytes+1))
	if err != nil {
		return nil, apperrors.Wrap(err, "An error occurred while reading the uploaded file.")
	}

	form.image = data
	form.imageProvided = true

	if metrics.ImageBytesIngested != nil {
		metrics.ImageBytesIngested.Observe(float64(len(data)))
	}
	return form, nil
}

// countUpdate 记录更新结果指标(指标未初始化时跳过)
func countUpdate(result string) {
	if metrics.BookUpdatesTotal != nil {
		metrics.BookUpdatesTotal.WithLabelValues(result).Inc()
	}
}
