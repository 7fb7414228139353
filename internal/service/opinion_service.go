package service

import (
	"time"

	"berg-stat-api/internal/domain"
	"berg-stat-api/pkg/apperr"
	"berg-stat-api/pkg/utils"
)

type OpinionService struct {
	opinions domain.OpinionRepository
	places   domain.PlaceRepository
	users    domain.UserRepository
	tags     domain.TagRepository
}

func NewOpinionService(
	opinions domain.OpinionRepository,
	places domain.PlaceRepository,
	users domain.UserRepository,
	tags domain.TagRepository,
) *OpinionService {
	return &OpinionService{opinions: opinions, places: places, users: users, tags: tags}
}

type TagInput struct {
	Name     string
	Category string
}

type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// PlaceOpinion 地点观点的读侧投影，点赞以用户名呈现
type PlaceOpinion struct {
	Opinion domain.Opinion `json:"opinion"`
	User    Author         `json:"user"`
	Likes   []string       `json:"likes"`
}

// AdminOpinion 管理端全量视图，不携带举报明细
type AdminOpinion struct {
	Opinion domain.Opinion `json:"opinion"`
	Place   domain.Place   `json:"place"`
	Author  Author         `json:"author"`
}

func (s *OpinionService) resolveTags(inputs []TagInput) ([]domain.Tag, error) {
	tags := make([]domain.Tag, 0, len(inputs))
	for _, in := range inputs {
		t, err := s.tags.FirstOrCreate(in.Name, in.Category)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *t)
	}
	return tags, nil
}

func (s *OpinionService) Add(placeName, authorID, text string, date time.Time, tagInputs []TagInput) (*domain.Opinion, error) {
	place, err := s.places.FindByName(placeName)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, apperr.NotFound("Place with given name does not exist")
	}
	tags, err := s.resolveTags(tagInputs)
	if err != nil {
		return nil, err
	}
	o := &domain.Opinion{
		ID:       utils.NewID(),
		AuthorID: authorID,
		PlaceID:  place.ID,
		Text:     text,
		Date:     date,
		Tags:     tags,
	}
	if err := s.opinions.Create(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OpinionService) ListForPlace(placeName string) ([]PlaceOpinion, error) {
	place, err := s.places.FindByName(placeName)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, apperr.NotFound("Place with given name does not exist")
	}
	ops, err := s.opinions.ListByPlace(place.ID)
	if err != nil {
		return nil, err
	}
	out := make([]PlaceOpinion, 0, len(ops))
	for _, o := range ops {
		author, err := s.users.FindByID(o.AuthorID)
		if err != nil {
			return nil, err
		}
		likes, err := s.opinions.LikedUsernames(o.ID)
		if err != nil {
			return nil, err
		}
		view := PlaceOpinion{Opinion: o, Likes: likes}
		if author != nil {
			view.User = Author{ID: author.ID, Username: author.Username}
		}
		out = append(out, view)
	}
	return out, nil
}

func (s *OpinionService) ListAllPlaces() ([]AdminOpinion, error) {
	ops, err := s.opinions.ListAll()
	if err != nil {
		return nil, err
	}
	places, err := s.places.List()
	if err != nil {
		return nil, err
	}
	placeByID := make(map[string]domain.Place, len(places))
	for _, p := range places {
		placeByID[p.ID] = p
	}
	out := make([]AdminOpinion, 0, len(ops))
	for _, o := range ops {
		author, err := s.users.FindByID(o.AuthorID)
		if err != nil {
			return nil, err
		}
		view := AdminOpinion{Opinion: o, Place: placeByID[o.PlaceID]}
		if author != nil {
			view.Author = Author{ID: author.ID, Username: author.Username}
		}
		out = append(out, view)
	}
	return out, nil
}

func (s *OpinionService) ListBlocked() ([]domain.Opinion, error) {
	return s.opinions.ListBlocked()
}

func (s *OpinionService) Get(id string) (*domain.Opinion, error) {
	o, err := s.opinions.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.NotFound("Opinion not found")
	}
	return o, nil
}

// verifyOwner 只有作者本人可以改删自己的观点；管理端走独立路由绕过此检查
func (s *OpinionService) verifyOwner(opinionID, userID string) (*domain.Opinion, error) {
	o, err := s.Get(opinionID)
	if err != nil {
		return nil, err
	}
	if o.AuthorID != userID {
		return nil, apperr.Forbidden("You have no permission to delete this resource")
	}
	return o, nil
}

func (s *OpinionService) Update(opinionID, userID, text string, date time.Time, tagInputs []TagInput) (*domain.Opinion, error) {
	if _, err := s.verifyOwner(opinionID, userID); err != nil {
		return nil, err
	}
	tags, err := s.resolveTags(tagInputs)
	if err != nil {
		return nil, err
	}
	o, err := s.opinions.Update(opinionID, text, date, tags)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.NotFound("Opinion not found")
	}
	return o, nil
}

func (s *OpinionService) Delete(opinionID, userID string) error {
	if _, err := s.verifyOwner(opinionID, userID); err != nil {
		return err
	}
	ok, err := s.opinions.SetDeleted(opinionID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Opinion not found")
	}
	return nil
}

func (s *OpinionService) DeleteByAdmin(opinionID string) error {
	ok, err := s.opinions.SetDeleted(opinionID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Opinion not found")
	}
	return nil
}

// SetBlocked 管理员无条件覆盖，不清理已有举报
func (s *OpinionService) SetBlocked(opinionID string, blocked bool) (*domain.Opinion, error) {
	o, err := s.opinions.SetBlocked(opinionID, blocked)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.NotFound("Opinion not found")
	}
	return o, nil
}

func (s *OpinionService) Like(opinionID, userID string) error {
	if _, err := s.Get(opinionID); err != nil {
		return err
	}
	liked, err := s.opinions.HasLike(opinionID, userID)
	if err != nil {
		return err
	}
	if liked {
		return apperr.Conflict("You have already liked this opinion")
	}
	if err := s.opinions.AddLike(opinionID, userID); err != nil {
		// 并发重复点赞被唯一索引拦下
		return apperr.Conflict("You have already liked this opinion")
	}
	return nil
}

func (s *OpinionService) Unlike(opinionID, userID string) error {
	if _, err := s.Get(opinionID); err != nil {
		return err
	}
	ok, err := s.opinions.RemoveLike(opinionID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Conflict("You did not like this opinion")
	}
	return nil
}

func (s *OpinionService) ReportReasons() []string { return domain.ReportReasons }

func (s *OpinionService) Report(opinionID, userID, reason, text string) (*domain.Opinion, error) {
	if !domain.IsValidReportReason(reason) {
		return nil, apperr.InvalidInput("You provide invalid report reason")
	}
	if _, err := s.Get(opinionID); err != nil {
		return nil, err
	}
	u, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	reported, err := s.opinions.HasReport(opinionID, userID)
	if err != nil {
		return nil, err
	}
	if reported {
		return nil, apperr.Conflict("You have already reported this opinion.")
	}
	rep := &domain.Report{
		ID:        utils.NewID(),
		OpinionID: opinionID,
		AuthorID:  userID,
		Reason:    reason,
		Text:      text,
	}
	return s.opinions.AddReportAndMaybeBlock(rep, domain.AutoBlockThreshold)
}
