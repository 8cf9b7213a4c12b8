// internal/service/partner.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/outreachhub/outreachhub/internal/domain"
	"github.com/outreachhub/outreachhub/internal/model"
	"github.com/outreachhub/outreachhub/internal/repository"
	"github.com/outreachhub/outreachhub/internal/validate"
)

// ImageStore persists partner images and returns a public URL. Nil stores
// are allowed; images are then ignored.
type ImageStore interface {
	UploadDataURL(ctx context.Context, key string, dataURL string) (string, error)
}

// PartnerService orchestrates the individual + partner + tags + resources
// write set. Every mutation runs its write phase in one transaction; all
// validation happens before it opens.
type PartnerService struct {
	repos       *repository.Repos
	atomic      repository.Atomic
	reconciler  *TagReconciler
	images      ImageStore
	phoneRegion string
	validate    *validator.Validate
}

func NewPartnerService(repos *repository.Repos, atomic repository.Atomic, reconciler *TagReconciler, images ImageStore, phoneRegion string) *PartnerService {
	return &PartnerService{
		repos:       repos,
		atomic:      atomic,
		reconciler:  reconciler,
		images:      images,
		phoneRegion: phoneRegion,
		validate:    validator.New(),
	}
}

type PartnerInput struct {
	Name                string `json:"name" validate:"required"`
	Description         string `json:"description" validate:"required"`
	Type                *int   `json:"type" validate:"required"`
	Email               string `json:"email" validate:"required"`
	Phone               string `json:"phone" validate:"required"`
	Image               string `json:"image"`
	IndividualFirstName string `json:"individual_first_name" validate:"required"`
	IndividualLastName  string `json:"individual_last_name" validate:"required"`
	IndividualEmail     string `json:"individual_email" validate:"required"`
	IndividualPhone     string `json:"individual_phone" validate:"required"`
	Tags                string `json:"tags"`
	ResourceInput
}

// checkInput runs the fixed validation ladder shared by create and update:
// presence, then email syntax, then phone validity. Stages after a failure
// are not executed, so the first failing stage decides the error kind.
func (s *PartnerService) checkInput(in PartnerInput) error {
	if err := s.validate.Struct(in); err != nil {
		return domain.ErrInputMissing
	}
	if !model.PartnerType(*in.Type).Valid() {
		return domain.ErrInputMissing
	}
	return nil
}

func (s *PartnerService) checkFormats(in PartnerInput) error {
	if !validate.Email(in.Email) || !validate.Email(in.IndividualEmail) {
		return domain.ErrInvalidEmail
	}
	if !validate.Phone(in.Phone, s.phoneRegion) || !validate.Phone(in.IndividualPhone, s.phoneRegion) {
		return domain.ErrInvalidPhone
	}
	return nil
}

// List returns the caller's organization's partners, fully populated.
func (s *PartnerService) List(ctx context.Context, caller *model.User) ([]model.Partner, error) {
	return s.repos.Partners.FindByOrganization(ctx, caller.OrganizationID)
}

// Create validates, then writes individual, partner, reconciled tag set and
// resources as one transaction, returning the populated partner.
func (s *PartnerService) Create(ctx context.Context, caller *model.User, in PartnerInput) (*model.Partner, error) {
	if err := s.checkInput(in); err != nil {
		return nil, err
	}
	if err := s.checkFormats(in); err != nil {
		return nil, err
	}

	resources, err := ParseResources(in.ResourceInput)
	if err != nil {
		return nil, err
	}
	tagNames := SplitNames(in.Tags)

	partnerPhone, err := validate.FormatPhone(in.Phone, s.phoneRegion)
	if err != nil {
		return nil, domain.ErrInvalidPhone
	}
	individualPhone, err := validate.FormatPhone(in.IndividualPhone, s.phoneRegion)
	if err != nil {
		return nil, domain.ErrInvalidPhone
	}

	imageURL, err := s.storeImage(ctx, in.Image)
	if err != nil {
		return nil, err
	}

	var created *model.Partner
	err = s.atomic.Do(ctx, func(r *repository.Repos) error {
		individual := &model.Individual{
			FirstName: in.IndividualFirstName,
			LastName:  in.IndividualLastName,
			Email:     in.IndividualEmail,
			Phone:     individualPhone,
		}
		if err := r.Partners.CreateIndividual(ctx, individual); err != nil {
			return err
		}

		partner := &model.Partner{
			Name:           in.Name,
			Description:    in.Description,
			Type:           model.PartnerType(*in.Type),
			Email:          in.Email,
			Phone:          partnerPhone,
			ImageURL:       imageURL,
			IndividualID:   individual.ID,
			OrganizationID: caller.OrganizationID,
		}
		if err := r.Partners.Create(ctx, partner); err != nil {
			return err
		}

		tags, err := s.reconciler.Reconcile(ctx, r.Tags, caller.OrganizationID, tagNames)
		if err != nil {
			return err
		}
		if err := r.Partners.ReplaceTags(ctx, partner, tags); err != nil {
			return err
		}

		for i := range resources {
			resources[i].PartnerID = partner.ID
		}
		if err := r.Partners.CreateResources(ctx, resources); err != nil {
			return err
		}

		created, err = r.Partners.FindByIDInOrg(ctx, caller.OrganizationID, partner.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

type PartnerUpdateInput struct {
	PartnerID string `json:"partner_id" validate:"required"`
	PartnerInput
}

// Update overwrites the partner's scalar fields, its individual, its
// resource set and its tag association in one transaction. The target must
// belong to the caller's organization.
func (s *PartnerService) Update(ctx context.Context, caller *model.User, in PartnerUpdateInput) (*model.Partner, error) {
	if in.PartnerID == "" {
		return nil, domain.ErrInputMissing
	}
	if err := s.checkInput(in.PartnerInput); err != nil {
		return nil, err
	}

	partnerID, err := uuid.Parse(in.PartnerID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	partner, err := s.repos.Partners.FindByIDInOrg(ctx, caller.OrganizationID, partnerID)
	if err != nil {
		return nil, err
	}

	if err := s.checkFormats(in.PartnerInput); err != nil {
		return nil, err
	}

	resources, err := ParseResources(in.ResourceInput)
	if err != nil {
		return nil, err
	}
	tagNames := SplitNames(in.Tags)

	partnerPhone, err := validate.FormatPhone(in.Phone, s.phoneRegion)
	if err != nil {
		return nil, domain.ErrInvalidPhone
	}
	individualPhone, err := validate.FormatPhone(in.IndividualPhone, s.phoneRegion)
	if err != nil {
		return nil, domain.ErrInvalidPhone
	}

	imageURL, err := s.storeImage(ctx, in.Image)
	if err != nil {
		return nil, err
	}

	var updated *model.Partner
	err = s.atomic.Do(ctx, func(r *repository.Repos) error {
		if err := r.Partners.DeleteResourcesByPartner(ctx, partner.ID); err != nil {
			return err
		}
		for i := range resources {
			resources[i].PartnerID = partner.ID
		}
		if err := r.Partners.CreateResources(ctx, resources); err != nil {
			return err
		}

		individual := partner.Individual
		individual.FirstName = in.IndividualFirstName
		individual.LastName = in.IndividualLastName
		individual.Email = in.IndividualEmail
		individual.Phone = individualPhone
		if err := r.Partners.UpdateIndividual(ctx, &individual); err != nil {
			return err
		}

		target := *partner
		target.Name = in.Name
		target.Description = in.Description
		target.Type = model.PartnerType(*in.Type)
		target.Email = in.Email
		target.Phone = partnerPhone
		if imageURL != nil {
			target.ImageURL = imageURL
		}
		if err := r.Partners.Update(ctx, &target); err != nil {
			return err
		}

		tags, err := s.reconciler.Reconcile(ctx, r.Tags, caller.OrganizationID, tagNames)
		if err != nil {
			return err
		}
		if err := r.Partners.ReplaceTags(ctx, &target, tags); err != nil {
			return err
		}

		updated, err = r.Partners.FindByIDInOrg(ctx, caller.OrganizationID, partner.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the partner by deleting its owned individual; resources
// and tag-association rows cascade away, shared tags stay.
func (s *PartnerService) Delete(ctx context.Context, caller *model.User, rawPartnerID string) error {
	if rawPartnerID == "" {
		return domain.ErrInputMissing
	}
	partnerID, err := uuid.Parse(rawPartnerID)
	if err != nil {
		return domain.ErrNotFound
	}
	partner, err := s.repos.Partners.FindByIDInOrg(ctx, caller.OrganizationID, partnerID)
	if err != nil {
		return err
	}

	return s.atomic.Do(ctx, func(r *repository.Repos) error {
		return r.Partners.DeleteIndividual(ctx, partner.IndividualID)
	})
}

// storeImage uploads an optional data-URL image and returns its URL. The
// upload happens before the write transaction; a failed transaction leaves
// at worst an unreferenced object behind.
func (s *PartnerService) storeImage(ctx context.Context, dataURL string) (*string, error) {
	if dataURL == "" || s.images == nil {
		return nil, nil
	}
	key := fmt.Sprintf("partners/%s", uuid.NewString())
	url, err := s.images.UploadDataURL(ctx, key, dataURL)
	if err != nil {
		return nil, fmt.Errorf("storing partner image: %w", err)
	}
	return &url, nil
}
