package book

import (
	"context"
	"errors"

	apperrors "github.com/guyidk/BookTrack-DevOps-Project/pkg/errors"
	"github.com/guyidk/BookTrack-DevOps-Project/pkg/validate"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装更新/新增的多步业务流程和规则校验
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// UpdateBook 更新图书
	// 业务规则(固定顺序,首个失败即返回):
	// - 书名<=100字符,作者<=150字符,在库数量>=0
	// - 图书必须存在
	// - 新书名不能与其他图书重复(与自己现书名相同不算冲突)
	// - 上传图片<=16MB且非空;未上传则保留原封面
	UpdateBook(ctx context.Context, id string, in UpdateInput) (*Book, error)

	// AddBook 新增图书
	// 在更新规则之外还校验ISBN-10/13校验位
	AddBook(ctx context.Context, in AddInput) (*Book, error)

	// GetBook 根据文档ID获取图书
	GetBook(ctx context.Context, id string) (*Book, error)

	// ListBooks 获取全部图书
	ListBooks(ctx context.Context) ([]*Book, error)

	// SearchBooks 按书名子串搜索(不区分大小写)
	SearchBooks(ctx context.Context, query string) ([]*Book, error)
}

// UpdateInput 更新请求的领域入参
// Image/ImageProvided对应multipart里可选的文件字段:
// ImageProvided=false表示请求没带文件(保留原封面)
type UpdateInput struct {
	Title           string
	Author          string
	ISBN            string
	Genre           string
	AvailableCopies int
	Image           []byte
	ImageProvided   bool
}

// AddInput 新增请求的领域入参
type AddInput struct {
	Title           string
	Author          string
	ISBN            string
	Genre           string
	AvailableCopies int
	Image           []byte
	ImageProvided   bool
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// UpdateBook 更新图书
func (s *service) UpdateBook(ctx context.Context, id string, in UpdateInput) (*Book, error) {
	// 1. 字段校验,顺序固定:书名→作者→在库数量
	//    错误文案的优先级是对外可观察行为,不能乱序
	if err := validate.Title(in.Title); err != nil {
		return nil, err
	}
	if err := validate.Author(in.Author); err != nil {
		return nil, err
	}
	if err := validate.AvailableCopies(in.AvailableCopies); err != nil {
		return nil, err
	}

	// 2. 加载现有图书
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, msgUpdateFailed)
	}

	// 3. 标题唯一性检查
	//    书名未变时完全跳过查询:自身永远不构成冲突
	if existing.Title != in.Title {
		dup, err := s.repo.FindByTitle(ctx, in.Title)
		if err != nil && !errors.Is(err, ErrBookNotFound) {
			return nil, apperrors.Wrap(err, msgUpdateFailed)
		}
		if dup != nil {
			return nil, ErrTitleDuplicate
		}
	}

	// 4. 处理可选的封面图片
	img, err := IngestImage(in.Image, in.ImageProvided)
	if err != nil {
		return nil, err
	}

	// 5. 覆盖字段并持久化
	//    注意:ISBN在更新流程不做校验位检查,沿用既有对外行为
	existing.ApplyUpdate(in.Title, in.Author, in.ISBN, in.Genre, in.AvailableCopies)
	if img.Set {
		existing.ReplaceImage(img.Base64)
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		// 预检查到写入之间有并发窗口,唯一索引冲突视为权威的重名结果
		if errors.Is(err, ErrTitleDuplicate) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, msgUpdateFailed)
	}

	return existing, nil
}

// AddBook 新增图书
func (s *service) AddBook(ctx context.Context, in AddInput) (*Book, error) {
	// 1. 字段校验(与更新同一套规则)
	if err := validate.Title(in.Title); err != nil {
		return nil, err
	}
	if err := validate.Author(in.Author); err != nil {
		return nil, err
	}
	if err := validate.AvailableCopies(in.AvailableCopies); err != nil {
		return nil, err
	}

	// 2. ISBN校验位检查(新增流程独有)
	if !validate.ISBN(in.ISBN) {
		return nil, ErrInvalidISBN
	}

	// 3. 标题唯一性检查
	dup, err := s.repo.FindByTitle(ctx, in.Title)
	if err != nil && !errors.Is(err, ErrBookNotFound) {
		return nil, apperrors.Wrap(err, msgAddFailed)
	}
	if dup != nil {
		return nil, ErrTitleDuplicate
	}

	// 4. 处理可选的封面图片
	img, err := IngestImage(in.Image, in.ImageProvided)
	if err != nil {
		return nil, err
	}

	// 5. 创建实体并持久化
	b := NewBook(in.Title, in.Author, in.ISBN, in.Genre, in.AvailableCopies)
	if img.Set {
		b.Image = img.Base64
	}

	if err := s.repo.Create(ctx, b); err != nil {
		if errors.Is(err, ErrTitleDuplicate) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, msgAddFailed)
	}

	return b, nil
}

// GetBook 根据文档ID获取图书
func (s *service) GetBook(ctx context.Context, id string) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// ListBooks 获取全部图书
func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx)
}

// SearchBooks 按书名子串搜索
func (s *service) SearchBooks(ctx context.Context, query string) ([]*Book, error) {
	return s.repo.SearchByTitle(ctx, query)
}
