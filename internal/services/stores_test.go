package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"tasteTribeBack/internal/models"
)

// In-memory stores backing the service tests. They mirror the repository
// contracts, including the uniqueness guards the real tables enforce.

type memUserStore struct {
	nextID int
	users  map[string]*models.User // keyed by email
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]*models.User{}}
}

func (m *memUserStore) add(u models.User) models.User {
	m.nextID++
	u.ID = m.nextID
	u.Email = strings.ToLower(u.Email)
	now := time.Now()
	u.LastUpdated = now
	u.CreatedAt = &now
	m.users[u.Email] = &u
	return u
}

func (m *memUserStore) CreateUser(ctx context.Context, u models.User) (models.User, bool, error) {
	if existing, ok := m.users[strings.ToLower(u.Email)]; ok {
		return *existing, false, nil
	}
	return m.add(u), true, nil
}

func (m *memUserStore) GetUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	for _, u := range m.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *memUserStore) byID(id int) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (m *memUserStore) GetUserByID(ctx context.Context, id int) (models.User, error) {
	u, err := m.byID(id)
	if err != nil {
		return models.User{}, err
	}
	return *u, nil
}

func (m *memUserStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	if u, ok := m.users[strings.ToLower(email)]; ok {
		return *u, nil
	}
	return models.User{}, models.ErrUserNotFound
}

func (m *memUserStore) GetRoleByEmail(ctx context.Context, email string) (string, error) {
	if u, ok := m.users[strings.ToLower(email)]; ok {
		return u.Role, nil
	}
	return "", models.ErrUserNotFound
}

// The update methods are silent no-ops for unknown targets, like the SQL
// UPDATEs they stand in for; existence is the service layer's concern.
func (m *memUserStore) UpdateProfile(ctx context.Context, email, name, photoURL string) error {
	if u, ok := m.users[strings.ToLower(email)]; ok {
		u.Name = name
		u.PhotoURL = photoURL
		u.LastUpdated = time.Now()
	}
	return nil
}

func (m *memUserStore) UpdateRole(ctx context.Context, id int, role string) error {
	if u, err := m.byID(id); err == nil {
		u.Role = role
	}
	return nil
}

func (m *memUserStore) PromoteToPremium(ctx context.Context, email, packageLabel string) error {
	if u, ok := m.users[strings.ToLower(email)]; ok {
		u.Role = models.RolePremium
		u.Package = &packageLabel
	}
	return nil
}

func (m *memUserStore) DeleteUser(ctx context.Context, id int) error {
	u, err := m.byID(id)
	if err != nil {
		return err
	}
	delete(m.users, u.Email)
	return nil
}

type memReviewStore struct {
	nextID  int
	reviews map[int]*models.Review
}

func newMemReviewStore() *memReviewStore {
	return &memReviewStore{reviews: map[int]*models.Review{}}
}

func (m *memReviewStore) CreateReview(ctx context.Context, rev models.Review) (models.Review, error) {
	m.nextID++
	rev.ID = m.nextID
	if rev.PostedDate.IsZero() {
		rev.PostedDate = time.Now()
	}
	rev.ReviewerEmail = strings.ToLower(rev.ReviewerEmail)
	m.reviews[rev.ID] = &rev
	return rev, nil
}

func (m *memReviewStore) GetReviewByID(ctx context.Context, id int) (models.Review, error) {
	if rev, ok := m.reviews[id]; ok {
		return *rev, nil
	}
	return models.Review{}, models.ErrReviewNotFound
}

func (m *memReviewStore) matching(filter models.ReviewFilter) []models.Review {
	matched := []models.Review{}
	for _, rev := range m.reviews {
		if filter.Search != "" && !strings.Contains(strings.ToLower(rev.FoodName), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.MinRating > 0 && int(rev.Rating) < filter.MinRating {
			continue
		}
		matched = append(matched, *rev)
	}
	sort.Slice(matched, func(i, j int) bool {
		if filter.Sort == models.SortTop && matched[i].Rating != matched[j].Rating {
			return matched[i].Rating > matched[j].Rating
		}
		return matched[i].PostedDate.After(matched[j].PostedDate)
	})
	return matched
}

func (m *memReviewStore) GetReviewsWithFilters(ctx context.Context, filter models.ReviewFilter) ([]models.Review, int, error) {
	matched := m.matching(filter)
	total := len(matched)
	start := (filter.Page - 1) * filter.Limit
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (m *memReviewStore) GetFeaturedReviews(ctx context.Context, limit int) ([]models.Review, error) {
	matched := m.matching(models.ReviewFilter{Sort: models.SortTop})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (m *memReviewStore) GetReviewsByEmail(ctx context.Context, email string) ([]models.Review, error) {
	matched := []models.Review{}
	for _, rev := range m.matching(models.ReviewFilter{}) {
		if strings.EqualFold(rev.ReviewerEmail, email) {
			matched = append(matched, rev)
		}
	}
	return matched, nil
}

func (m *memReviewStore) UpdateReview(ctx context.Context, rev models.Review) error {
	if _, ok := m.reviews[rev.ID]; !ok {
		return nil
	}
	m.reviews[rev.ID] = &rev
	return nil
}

func (m *memReviewStore) DeleteReview(ctx context.Context, id int) (bool, error) {
	if _, ok := m.reviews[id]; !ok {
		return false, nil
	}
	delete(m.reviews, id)
	return true, nil
}

type memFavoriteStore struct {
	nextID    int
	favorites map[int]*models.FavoriteReview
	failSweep error // injected failure for the cascade's second step
}

func newMemFavoriteStore() *memFavoriteStore {
	return &memFavoriteStore{favorites: map[int]*models.FavoriteReview{}}
}

func (m *memFavoriteStore) AddToFavorites(ctx context.Context, fav models.FavoriteReview) (models.FavoriteReview, error) {
	for _, existing := range m.favorites {
		if strings.EqualFold(existing.UserEmail, fav.UserEmail) && existing.ReviewID == fav.ReviewID {
			return models.FavoriteReview{}, models.ErrAlreadyFavorite
		}
	}
	m.nextID++
	fav.ID = m.nextID
	fav.UserEmail = strings.ToLower(fav.UserEmail)
	fav.AddDate = time.Now()
	fav.ReviewExists = true
	m.favorites[fav.ID] = &fav
	return fav, nil
}

func (m *memFavoriteStore) GetFavoritesByUser(ctx context.Context, email string) ([]models.FavoriteReview, error) {
	favs := []models.FavoriteReview{}
	for _, fav := range m.favorites {
		if strings.EqualFold(fav.UserEmail, email) {
			favs = append(favs, *fav)
		}
	}
	sort.Slice(favs, func(i, j int) bool { return favs[i].AddDate.After(favs[j].AddDate) })
	return favs, nil
}

func (m *memFavoriteStore) GetFavoriteByID(ctx context.Context, id int) (models.FavoriteReview, error) {
	if fav, ok := m.favorites[id]; ok {
		return *fav, nil
	}
	return models.FavoriteReview{}, models.ErrFavoriteNotFound
}

func (m *memFavoriteStore) DeleteFavorite(ctx context.Context, id int) (bool, error) {
	if _, ok := m.favorites[id]; !ok {
		return false, nil
	}
	delete(m.favorites, id)
	return true, nil
}

func (m *memFavoriteStore) DeleteByReviewID(ctx context.Context, reviewID int) (int64, error) {
	if m.failSweep != nil {
		return 0, m.failSweep
	}
	var removed int64
	for id, fav := range m.favorites {
		if fav.ReviewID == reviewID {
			delete(m.favorites, id)
			removed++
		}
	}
	return removed, nil
}

var errStoreDown = errors.New("store unavailable")
