package services

import (
	"strings"

	"github.com/EatRateLove/eatratelove_backend/internal/events"
	"github.com/EatRateLove/eatratelove_backend/internal/models"
	"github.com/EatRateLove/eatratelove_backend/internal/repository"
)

// PostService 投稿といいね・コメントに関するサービスインターフェース
type PostService interface {
	Create(userID uint, imageURL, caption string) (*models.PostDetail, error)
	Get(postID uint) (*models.PostDetail, error)
	Delete(userID, postID uint) error
	Like(userID, postID uint) error
	Unlike(userID, postID uint) error
	AddComment(userID, postID uint, text string) (uint, error)
}

// postService PostServiceの実装
type postService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	publisher   events.Publisher
}

// NewPostService PostServiceを作成
func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, publisher events.Publisher) PostService {
	return &postService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		publisher:   publisher,
	}
}

// Create 投稿を作成
func (s *postService) Create(userID uint, imageURL, caption string) (*models.PostDetail, error) {
	// 空白だけの参照は不可、値はそのまま保存する
	if strings.TrimSpace(imageURL) == "" {
		return nil, newValidationError("image_url", "画像URLは必須です")
	}

	post := &models.Post{
		UserID:   userID,
		ImageURL: imageURL,
		Caption:  caption,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, mapRepoError(err)
	}

	publish(s.publisher, events.Event{Type: events.TypePostCreated, ActorID: userID, PostID: post.ID})

	// 作成直後はいいねもコメントもない
	return &models.PostDetail{
		ID:        post.ID,
		UserID:    post.UserID,
		Caption:   post.Caption,
		ImageURL:  post.ImageURL,
		CreatedAt: post.CreatedAt,
		Likes:     0,
		Comments:  []models.CommentView{},
	}, nil
}

// Get いいね数とコメント一覧付きで投稿を取得
func (s *postService) Get(postID uint) (*models.PostDetail, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	likes, err := s.postRepo.CountLikes(post.ID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(post.ID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.CommentView{}
	}

	return &models.PostDetail{
		ID:        post.ID,
		UserID:    post.UserID,
		Caption:   post.Caption,
		ImageURL:  post.ImageURL,
		CreatedAt: post.CreatedAt,
		Likes:     likes,
		Comments:  comments,
	}, nil
}

// Delete 投稿を削除 (投稿者本人のみ)
func (s *postService) Delete(userID, postID uint) error {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return mapRepoError(err)
	}
	if post.UserID != userID {
		return ErrForbidden
	}

	if err := s.postRepo.Delete(post.ID); err != nil {
		return mapRepoError(err)
	}

	publish(s.publisher, events.Event{Type: events.TypePostDeleted, ActorID: userID, PostID: post.ID})
	return nil
}

// Like いいねする (既にいいね済みでもエラーにしない)
func (s *postService) Like(userID, postID uint) error {
	if err := s.ensurePost(postID); err != nil {
		return err
	}
	if err := s.postRepo.AddLike(userID, postID); err != nil {
		return mapRepoError(err)
	}
	publish(s.publisher, events.Event{Type: events.TypeLiked, ActorID: userID, PostID: postID})
	return nil
}

// Unlike いいねを取り消す
func (s *postService) Unlike(userID, postID uint) error {
	if err := s.ensurePost(postID); err != nil {
		return err
	}
	if err := s.postRepo.RemoveLike(userID, postID); err != nil {
		return err
	}
	publish(s.publisher, events.Event{Type: events.TypeUnliked, ActorID: userID, PostID: postID})
	return nil
}

// AddComment コメントを追加し、作成したコメントのIDを返す
func (s *postService) AddComment(userID, postID uint, text string) (uint, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, newValidationError("text", "コメントを入力してください")
	}
	if err := s.ensurePost(postID); err != nil {
		return 0, err
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Text:   text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return 0, mapRepoError(err)
	}

	publish(s.publisher, events.Event{Type: events.TypeCommented, ActorID: userID, PostID: postID})
	return comment.ID, nil
}

// ensurePost 投稿の存在を確認
func (s *postService) ensurePost(postID uint) error {
	exists, err := s.postRepo.Exists(postID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}
