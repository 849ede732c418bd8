package service

import (
	"context"
	"strings"

	"kas-dashboard-svc/internal/aggregate"
	"kas-dashboard-svc/internal/models"
	"kas-dashboard-svc/internal/pagination"
	"kas-dashboard-svc/pkg/logger"
)

// MemberList is one client-side page of the member table with counters over all members
type MemberList struct {
	Page   pagination.Page[models.Member] `json:"page"`
	Counts aggregate.MemberCounts         `json:"counts"`
}

// MemberService interface defines member management methods
type MemberService interface {
	ListMembers(ctx context.Context, query string, page, perPage int) (*MemberList, error)
	ActiveMembers(ctx context.Context) ([]models.Member, error)
	GetMember(ctx context.Context, id string) (*models.Member, error)
	CreateMember(ctx context.Context, in models.MemberInput) (*models.Member, error)
	UpdateMember(ctx context.Context, id string, in models.MemberInput) (*models.Member, error)
	DeleteMember(ctx context.Context, id string) error
}

// memberService implements MemberService interface
type memberService struct {
	api    MemberAPI
	logger *logger.Logger
}

// NewMemberService creates a new member service
func NewMemberService(api MemberAPI, logger *logger.Logger) MemberService {
	return &memberService{
		api:    api,
		logger: logger,
	}
}

// ListMembers fetches every member and slices the filtered list. page is 1-indexed.
func (s *memberService) ListMembers(ctx context.Context, query string, page, perPage int) (*MemberList, error) {
	members, err := s.api.ListMembers(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list members")
		return nil, err
	}

	filtered := aggregate.FilterMembers(members, query)
	return &MemberList{
		Page:   pagination.Slice(filtered, page, perPage),
		Counts: aggregate.CountMembers(members),
	}, nil
}

// ActiveMembers returns the members that may own a new invoice
func (s *memberService) ActiveMembers(ctx context.Context) ([]models.Member, error) {
	members, err := s.api.ListMembers(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list members")
		return nil, err
	}
	return aggregate.ActiveMembers(members), nil
}

// GetMember gets a member by id
func (s *memberService) GetMember(ctx context.Context, id string) (*models.Member, error) {
	if strings.TrimSpace(id) == "" {
		return nil, newValidationError("id", "member id is required")
	}
	return s.api.GetMember(ctx, id)
}

// CreateMember validates and creates a member
func (s *memberService) CreateMember(ctx context.Context, in models.MemberInput) (*models.Member, error) {
	in, err := validateMemberInput(in)
	if err != nil {
		return nil, err
	}

	member, err := s.api.CreateMember(ctx, in)
	if err != nil {
		s.logger.WithError(err).WithField("nama", in.Nama).Error("Failed to create member")
		return nil, err
	}

	s.logger.WithField("member_id", member.ID).Info("Member created successfully")
	return member, nil
}

// UpdateMember validates and updates a member
func (s *memberService) UpdateMember(ctx context.Context, id string, in models.MemberInput) (*models.Member, error) {
	if strings.TrimSpace(id) == "" {
		return nil, newValidationError("id", "member id is required")
	}
	in, err := validateMemberInput(in)
	if err != nil {
		return nil, err
	}

	member, err := s.api.UpdateMember(ctx, id, in)
	if err != nil {
		s.logger.WithError(err).WithField("member_id", id).Error("Failed to update member")
		return nil, err
	}

	s.logger.WithField("member_id", id).Info("Member updated successfully")
	return member, nil
}

// DeleteMember deletes a member
func (s *memberService) DeleteMember(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return newValidationError("id", "member id is required")
	}
	if err := s.api.DeleteMember(ctx, id); err != nil {
		s.logger.WithError(err).WithField("member_id", id).Error("Failed to delete member")
		return err
	}

	s.logger.WithField("member_id", id).Info("Member deleted successfully")
	return nil
}

func validateMemberInput(in models.MemberInput) (models.MemberInput, error) {
	in.Nama = strings.TrimSpace(in.Nama)
	in.NoHp = strings.TrimSpace(in.NoHp)
	if in.Nama == "" {
		return in, newValidationError("nama", "nama is required")
	}
	if in.NoHp == "" {
		return in, newValidationError("noHp", "noHp is required")
	}

	status, err := models.ParseMemberStatus(string(in.Status))
	if err != nil {
		return in, newValidationError("status", err.Error())
	}
	in.Status = status
	return in, nil
}
