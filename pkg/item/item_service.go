package item

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"movelist-backend/domain"
	"movelist-backend/entities"
	"movelist-backend/internal/utils/mailing"
	"movelist-backend/internal/utils/storage"
	"movelist-backend/pkg/breakdown"
	"movelist-backend/pkg/person"
	"movelist-backend/pkg/settings"
	"movelist-backend/pkg/watch"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ItemService interface {
		AddItem(ctx context.Context, req domain.AddItemRequest) (domain.ItemResponse, error)
		GetItems(ctx context.Context, query domain.ItemQuery) ([]domain.ItemResponse, error)
		GetItemByID(ctx context.Context, id string) (domain.ItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest) error
		DeleteItem(ctx context.Context, id string) error
		PurchaseItem(ctx context.Context, id string, req domain.PurchaseItemRequest) (domain.ItemResponse, error)
		RevertItem(ctx context.Context, id string) error
		UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest) (domain.UploadReceiptResponse, error)
	}

	itemService struct {
		itemRepository   ItemRepository
		personRepository person.PersonRepository
		settingsService  settings.SettingsService
		s3               storage.AwsS3
		hub              *watch.Hub
	}
)

func NewItemService(
	itemRepository ItemRepository,
	personRepository person.PersonRepository,
	settingsService settings.SettingsService,
	s3 storage.AwsS3,
	hub *watch.Hub,
) ItemService {
	return &itemService{
		itemRepository:   itemRepository,
		personRepository: personRepository,
		settingsService:  settingsService,
		s3:               s3,
		hub:              hub,
	}
}

func (s *itemService) payerNames(ctx context.Context) map[string]string {
	people, err := s.personRepository.GetPeople(ctx)
	if err != nil {
		return nil
	}
	names := make(map[string]string, len(people))
	for _, p := range people {
		names[p.ID.String()] = p.Name
	}
	return names
}

func toItemResponse(item *entities.Item, names map[string]string) domain.ItemResponse {
	res := domain.ItemResponse{
		ID:             item.ID.String(),
		Name:           item.Name,
		Category:       item.Category,
		EstimatedPrice: item.EstimatedPrice,
		ActualPrice:    item.ActualPrice,
		Status:         item.Status,
		ReceiptURL:     item.ReceiptURL,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
	if item.BoughtByID != nil {
		res.BoughtBy = item.BoughtByID.String()
		if name, ok := names[res.BoughtBy]; ok {
			res.BoughtByName = name
		} else {
			res.BoughtByName = "unknown"
		}
	}
	return res
}

func (s *itemService) publishItems(ctx context.Context) {
	items, err := s.itemRepository.GetItems(ctx, "all")
	if err != nil {
		return
	}
	names := s.payerNames(ctx)
	responses := make([]domain.ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, toItemResponse(&items[i], names))
	}
	s.hub.Publish(watch.CollectionItems, responses)
}

func (s *itemService) validateCategory(ctx context.Context, category string) error {
	categories, err := s.settingsService.EffectiveCategories(ctx)
	if err != nil {
		return err
	}
	for _, c := range categories {
		if c == category {
			return nil
		}
	}
	return domain.ErrUnknownCategory
}

func (s *itemService) AddItem(ctx context.Context, req domain.AddItemRequest) (domain.ItemResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.ItemResponse{}, domain.ErrEmptyItemName
	}
	// Membership is checked at creation time only; a later category rename
	// does not invalidate existing items.
	if err := s.validateCategory(ctx, req.Category); err != nil {
		return domain.ItemResponse{}, err
	}
	if req.EstimatedPrice != nil && *req.EstimatedPrice < 0 {
		return domain.ItemResponse{}, domain.ErrNegativePrice
	}

	item := &entities.Item{
		ID:             uuid.New(),
		Name:           name,
		Category:       req.Category,
		EstimatedPrice: req.EstimatedPrice,
		Status:         entities.ItemStatusPending,
	}

	if err := s.itemRepository.AddItem(ctx, item); err != nil {
		return domain.ItemResponse{}, err
	}

	s.publishItems(ctx)
	return toItemResponse(item, nil), nil
}

func (s *itemService) GetItems(ctx context.Context, query domain.ItemQuery) ([]domain.ItemResponse, error) {
	items, err := s.itemRepository.GetItems(ctx, query.Status)
	if err != nil {
		return nil, err
	}

	items = ApplyQuery(items, query)

	names := s.payerNames(ctx)
	responses := make([]domain.ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, toItemResponse(&items[i], names))
	}
	return responses, nil
}

func (s *itemService) GetItemByID(ctx context.Context, id string) (domain.ItemResponse, error) {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, err
	}
	return toItemResponse(item, s.payerNames(ctx)), nil
}

func (s *itemService) UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest) error {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	fields := map[string]interface{}{}

	if req.Name != "" {
		name := strings.TrimSpace(req.Name)
		if name == "" {
			return domain.ErrEmptyItemName
		}
		fields["name"] = name
	}
	if req.Category != "" {
		if err := s.validateCategory(ctx, req.Category); err != nil {
			return err
		}
		fields["category"] = req.Category
	}
	if req.EstimatedPrice != nil {
		if *req.EstimatedPrice < 0 {
			return domain.ErrNegativePrice
		}
		fields["estimated_price"] = *req.EstimatedPrice
	}

	switch {
	case req.Status == entities.ItemStatusPending && item.Status == entities.ItemStatusBought:
		// Demoting to pending is a hard reset of the purchase record,
		// including the stored receipt object.
		s.deleteReceiptObject(item.ReceiptURL)
		fields["status"] = entities.ItemStatusPending
		fields["actual_price"] = nil
		fields["bought_by_id"] = nil
		fields["receipt_url"] = ""
	case req.Status == entities.ItemStatusBought:
		fields["status"] = entities.ItemStatusBought
		if req.ActualPrice != nil {
			fields["actual_price"] = *req.ActualPrice
		}
		if req.BoughtBy != "" {
			payerID, err := s.resolvePayer(ctx, req.BoughtBy)
			if err != nil {
				return err
			}
			fields["bought_by_id"] = payerID
		}
		if req.ReceiptURL != "" {
			fields["receipt_url"] = req.ReceiptURL
		}
	}

	if len(fields) == 0 {
		return nil
	}

	if err := s.itemRepository.UpdateItemFields(ctx, id, fields); err != nil {
		return err
	}

	s.publishItems(ctx)
	return nil
}

func (s *itemService) DeleteItem(ctx context.Context, id string) error {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	s.deleteReceiptObject(item.ReceiptURL)

	if err := s.itemRepository.DeleteItem(ctx, id); err != nil {
		return err
	}

	s.publishItems(ctx)
	return nil
}

func (s *itemService) resolvePayer(ctx context.Context, id string) (uuid.UUID, error) {
	payerID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domain.ErrParseUUID
	}

	payer, err := s.personRepository.GetPersonByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, domain.ErrPersonNotFound
		}
		return uuid.Nil, err
	}
	if !payer.IsPayer {
		return uuid.Nil, domain.ErrNotAPayer
	}
	return payerID, nil
}

// PurchaseItem runs the pending -> bought transition. Concurrent
// submissions are not guarded; the last write wins, matching the store's
// replace-on-snapshot model.
func (s *itemService) PurchaseItem(ctx context.Context, id string, req domain.PurchaseItemRequest) (domain.ItemResponse, error) {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, err
	}

	if req.BoughtBy == "" {
		return domain.ItemResponse{}, domain.ErrMissingPayer
	}
	payerID, err := s.resolvePayer(ctx, req.BoughtBy)
	if err != nil {
		return domain.ItemResponse{}, err
	}
	if req.ActualPrice == nil || *req.ActualPrice < 0 {
		return domain.ItemResponse{}, domain.ErrNegativePrice
	}

	fields := map[string]interface{}{
		"status":       entities.ItemStatusBought,
		"actual_price": *req.ActualPrice,
		"bought_by_id": payerID,
	}
	if req.ReceiptURL != "" {
		fields["receipt_url"] = req.ReceiptURL
	}

	if err := s.itemRepository.UpdateItemFields(ctx, id, fields); err != nil {
		return domain.ItemResponse{}, err
	}

	item.Status = entities.ItemStatusBought
	item.ActualPrice = req.ActualPrice
	item.BoughtByID = &payerID
	if req.ReceiptURL != "" {
		item.ReceiptURL = req.ReceiptURL
	}

	s.publishItems(ctx)
	go s.maybeSendBudgetAlert(context.Background())

	return toItemResponse(item, s.payerNames(ctx)), nil
}

func (s *itemService) RevertItem(ctx context.Context, id string) error {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}
	if item.Status != entities.ItemStatusBought {
		return domain.ErrItemNotBought
	}

	s.deleteReceiptObject(item.ReceiptURL)

	fields := map[string]interface{}{
		"status":       entities.ItemStatusPending,
		"actual_price": nil,
		"bought_by_id": nil,
		"receipt_url":  "",
	}
	if err := s.itemRepository.UpdateItemFields(ctx, id, fields); err != nil {
		return err
	}

	s.publishItems(ctx)
	return nil
}

func (s *itemService) UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest) (domain.UploadReceiptResponse, error) {
	fileName := fmt.Sprintf("receipt-%s", uuid.New().String())
	objectKey, err := s.s3.UploadFile(fileName, req.Receipt, "receipts", storage.AllowImage...)
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}

	return domain.UploadReceiptResponse{
		URL:       s.s3.GetPublicLinkKey(objectKey),
		ObjectKey: objectKey,
	}, nil
}

func (s *itemService) deleteReceiptObject(receiptURL string) {
	if receiptURL == "" {
		return
	}
	objectKey := s.s3.GetObjectKeyFromLink(receiptURL)
	if objectKey == "" {
		return
	}
	if err := s.s3.DeleteFile(objectKey); err != nil {
		log.Printf("failed to delete receipt object %s: %v", objectKey, err)
	}
}

func (s *itemService) maybeSendBudgetAlert(ctx context.Context) {
	res, err := s.settingsService.GetSettings(ctx)
	if err != nil || res.AlertEmail == "" || res.Budget == nil {
		return
	}

	items, err := s.itemRepository.GetItems(ctx, "all")
	if err != nil {
		return
	}

	status, enabled := breakdown.EvaluateBudget(items, res.Budget)
	if !enabled || status.Tier != domain.BudgetTierOver {
		return
	}

	body := fmt.Sprintf(
		"<p>The shopping list is over budget.</p><p>Budget: %.2f<br>Projected total: %.2f<br>Overrun: %.2f</p>",
		status.Budget, status.ProjectedTotal, -status.Remaining,
	)
	if err := mailing.SendMail(res.AlertEmail, "Shopping list over budget", body); err != nil {
		log.Printf("failed to send budget alert: %v", err)
	}
}
