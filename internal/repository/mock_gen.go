// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -source=./tag.go -destination=../mocks/mock_tag_repository.go -package=mocks TagRepositoryIface
//go:generate mockgen -source=./partner.go -destination=../mocks/mock_partner_repository.go -package=mocks PartnerRepositoryIface
//go:generate mockgen -source=./event.go -destination=../mocks/mock_event_repository.go -package=mocks EventRepositoryIface
