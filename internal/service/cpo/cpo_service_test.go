package cpo

import (
	"context"
	"errors"
	"testing"

	"github.com/adriandotdev/emsp-v2/internal/domain"
	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
	"github.com/adriandotdev/emsp-v2/internal/pkg/store"
	"github.com/adriandotdev/emsp-v2/internal/pkg/utils"
)

type fakeStore struct {
	store.Store

	existingNames map[string]bool
	takenPartyIDs map[string]bool
	procResult    store.ProcResult
	registered    []store.RegisterCPOParams
}

func (f *fakeStore) CheckCPOExistsByName(_ context.Context, name string) (bool, error) {
	return f.existingNames[name], nil
}

func (f *fakeStore) PartyIDExists(_ context.Context, partyID string) (bool, error) {
	return f.takenPartyIDs[partyID], nil
}

func (f *fakeStore) RegisterCPO(_ context.Context, params store.RegisterCPOParams) (store.ProcResult, error) {
	f.registered = append(f.registered, params)
	if f.procResult.Status != "" {
		return f.procResult, nil
	}
	return store.ProcResult{Status: "SUCCESS", StatusType: "success"}, nil
}

type fakeMailer struct {
	to, username, password string
}

func (m *fakeMailer) SendCredentials(to, username, password string) error {
	m.to, m.username, m.password = to, username, password
	return nil
}

func registerRequest() *domain.RegisterCPORequest {
	ready := true
	return &domain.RegisterCPORequest{
		Username:      "testsolutions",
		CPOOwnerName:  "Test EVSE Solutions",
		ContactName:   "Juan dela Cruz",
		ContactNumber: "09171234567",
		ContactEmail:  "ops@testsolutions.ph",
		OCPPReady:     &ready,
	}
}

func TestRegisterCPO(t *testing.T) {
	st := &fakeStore{existingNames: map[string]bool{}, takenPartyIDs: map[string]bool{}}
	mail := &fakeMailer{}
	svc := NewCPOService(st, mail)

	details, err := svc.RegisterCPO(context.Background(), registerRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if details.PartyID != "TES" {
		t.Errorf("party id = %q, want TES from owner name initials", details.PartyID)
	}
	if details.TokenC == "" {
		t.Error("token_c not generated")
	}

	if len(st.registered) != 1 {
		t.Fatalf("registered %d times, want 1", len(st.registered))
	}
	params := st.registered[0]
	if params.Password == "" || params.Password == mail.password {
		t.Error("stored password is not a hash of the mailed credential")
	}
	if !utils.CheckPassword(params.Password, mail.password) {
		t.Error("mailed password does not verify against stored hash")
	}
	if mail.to != "ops@testsolutions.ph" || mail.username != "testsolutions" {
		t.Errorf("credentials mailed to %q as %q", mail.to, mail.username)
	}
}

func TestRegisterCPODuplicateName(t *testing.T) {
	st := &fakeStore{
		existingNames: map[string]bool{"Test EVSE Solutions": true},
		takenPartyIDs: map[string]bool{},
	}
	svc := NewCPOService(st, &fakeMailer{})

	if _, err := svc.RegisterCPO(context.Background(), registerRequest()); !errors.Is(err, constants.ErrCPOExists) {
		t.Fatalf("err = %v, want %v", err, constants.ErrCPOExists)
	}
	if len(st.registered) != 0 {
		t.Error("procedure called for a duplicate owner name")
	}
}

func TestRegisterCPOPartyIDCollisionRetries(t *testing.T) {
	st := &fakeStore{
		existingNames: map[string]bool{},
		takenPartyIDs: map[string]bool{"TES": true},
	}
	svc := NewCPOService(st, &fakeMailer{})

	details, err := svc.RegisterCPO(context.Background(), registerRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.PartyID == "TES" {
		t.Error("collided party id was not regenerated")
	}
	if len(details.PartyID) != 3 {
		t.Errorf("party id %q length = %d, want 3", details.PartyID, len(details.PartyID))
	}
}

func TestRegisterCPOProcedureRejection(t *testing.T) {
	st := &fakeStore{
		existingNames: map[string]bool{},
		takenPartyIDs: map[string]bool{},
		procResult:    store.ProcResult{Status: "USERNAME_EXISTS", StatusType: "bad_request"},
	}
	svc := NewCPOService(st, &fakeMailer{})

	_, err := svc.RegisterCPO(context.Background(), registerRequest())
	if err == nil || err.Error() != "USERNAME_EXISTS" {
		t.Fatalf("err = %v, want USERNAME_EXISTS", err)
	}
}
