package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/leadflow/crm/internal/apperrors"
	"github.com/leadflow/crm/internal/model"
	svcMocks "github.com/leadflow/crm/internal/service/mocks"
	"github.com/leadflow/crm/internal/validation"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testLeadID = "c0a1fd4f-31b0-41e7-9f0a-3d8f0f8d2a11"

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type handlersTestSuite struct {
	suite.Suite
	app         *echo.Echo
	leadSvcMock *svcMocks.LeadService
}

func (s *handlersTestSuite) SetupTest() {
	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		s.FailNow("failed to build echo validator because of missing en translations")
	}

	s.app = echo.New()
	s.app.Validator = validation.Echo(validator.New(), trans)
	s.app.HTTPErrorHandler = ErrorHandler(logrus.New())

	s.leadSvcMock = svcMocks.NewLeadService(s.T())
	leadHandler := NewLeadHTTPHandler(s.leadSvcMock)

	leadAPI := s.app.Group("/api/lead")
	leadAPI.POST("/create", leadHandler.Post)
	leadAPI.GET("/leads", leadHandler.GetAll)
	leadAPI.POST("/activity", leadHandler.PostActivity)
	leadAPI.GET("/:id", leadHandler.Get)
	leadAPI.PATCH("/:id/status", leadHandler.PatchStatus)
}

func (s *handlersTestSuite) request(method string, path string, body string) (*http.Request, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return req, httptest.NewRecorder()
}

func (s *handlersTestSuite) decode(rec *httptest.ResponseRecorder) envelope {
	var env envelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env), "response must be a valid envelope")
	return env
}

func (s *handlersTestSuite) TestCreateLead() {
	created := &model.Lead{
		ID:          testLeadID,
		FirstName:   "Ann",
		CompanyName: "Acme",
		Email:       "a@acme.com",
		Source:      "Website",
		Status:      model.StatusNew,
		Activities:  make([]model.Activity, 0),
	}

	s.leadSvcMock.On("Create", mock.Anything, mock.MatchedBy(func(l *model.Lead) bool {
		return l.FirstName == "Ann" && l.CompanyName == "Acme" && l.Email == "a@acme.com" && l.Source == "Website"
	})).Return(created, nil).Once()

	req, rec := s.request(http.MethodPost, "/api/lead/create", `{"firstName":"Ann","companyName":"Acme","email":"a@acme.com","source":"Website"}`)
	s.app.ServeHTTP(rec, req)

	s.T().Log("lead creation must answer 201 with the created lead in the envelope")
	{
		s.Assert().Equal(http.StatusCreated, rec.Code)

		env := s.decode(rec)
		s.Assert().True(env.Success)
		s.Assert().Equal("Lead created", env.Message)

		var lead model.Lead
		s.Require().NoError(json.Unmarshal(env.Data, &lead))
		s.Assert().Equal(testLeadID, lead.ID, "assigned id must be returned")
		s.Assert().Equal(model.StatusNew, lead.Status, "status must default to New")
		s.Assert().NotNil(lead.Activities, "activities must be present")
		s.Assert().Empty(lead.Activities, "activity journal must start empty")
	}
}

func (s *handlersTestSuite) TestGetAllLeads() {
	leads := []*model.Lead{
		{ID: "1", FirstName: "Ann", Status: model.StatusNew, Activities: make([]model.Activity, 0)},
		{ID: "2", FirstName: "Bob", Status: model.StatusContacted, Activities: make([]model.Activity, 0)},
	}

	s.leadSvcMock.On("FindAll", mock.Anything).Return(leads, nil).Once()

	req, rec := s.request(http.MethodGet, "/api/lead/leads", "")
	s.app.ServeHTTP(rec, req)

	s.T().Log("all leads must come back unfiltered in store order")
	{
		s.Assert().Equal(http.StatusOK, rec.Code)

		env := s.decode(rec)
		s.Assert().True(env.Success)

		var got []*model.Lead
		s.Require().NoError(json.Unmarshal(env.Data, &got))
		s.Assert().Len(got, 2)
		s.Assert().Equal("1", got[0].ID)
	}
}

func (s *handlersTestSuite) TestGetLeadNotFound() {
	s.leadSvcMock.On("FindByID", mock.Anything, "missing").Return(nil, apperrors.NewNotFoundErr("lead not found")).Once()

	req, rec := s.request(http.MethodGet, "/api/lead/missing", "")
	s.app.ServeHTTP(rec, req)

	s.T().Log("unknown id must answer 404 with failure envelope")
	{
		s.Assert().Equal(http.StatusNotFound, rec.Code)

		env := s.decode(rec)
		s.Assert().False(env.Success)
		s.Assert().Equal("lead not found", env.Message)
	}
}

func (s *handlersTestSuite) TestAddActivity() {
	activities := []model.Activity{
		{ID: "a1", Type: "Called", Description: "Discussed pricing"},
	}

	s.leadSvcMock.On("AddActivity", mock.Anything, testLeadID, "Called", "Discussed pricing").Return(activities, nil).Once()

	req, rec := s.request(http.MethodPost, "/api/lead/activity", `{"id":"`+testLeadID+`","type":"Called","description":"Discussed pricing"}`)
	s.app.ServeHTTP(rec, req)

	s.T().Log("appending an activity must answer 200 with the full journal")
	{
		s.Assert().Equal(http.StatusOK, rec.Code)

		env := s.decode(rec)
		s.Assert().True(env.Success)
		s.Assert().Equal("Activity added successfully", env.Message)

		var got []model.Activity
		s.Require().NoError(json.Unmarshal(env.Data, &got))
		s.Assert().Len(got, 1)
		s.Assert().Equal("Called", got[0].Type)
	}
}

func (s *handlersTestSuite) TestAddActivityMissingFields() {
	req, rec := s.request(http.MethodPost, "/api/lead/activity", `{"id":"`+testLeadID+`","description":"Discussed pricing"}`)
	s.app.ServeHTTP(rec, req)

	s.T().Log("missing type must answer 400 before the service is touched")
	{
		s.Assert().Equal(http.StatusBadRequest, rec.Code)

		env := s.decode(rec)
		s.Assert().False(env.Success)
		s.leadSvcMock.AssertNotCalled(s.T(), "AddActivity", mock.Anything, testLeadID, "", "Discussed pricing")
	}
}

func (s *handlersTestSuite) TestAddActivityUnknownLead() {
	s.leadSvcMock.On("AddActivity", mock.Anything, "missing", "Called", "Discussed pricing").Return(nil, apperrors.NewNotFoundErr("lead not found")).Once()

	req, rec := s.request(http.MethodPost, "/api/lead/activity", `{"id":"missing","type":"Called","description":"Discussed pricing"}`)
	s.app.ServeHTTP(rec, req)

	s.T().Log("unknown lead must answer 404")
	{
		s.Assert().Equal(http.StatusNotFound, rec.Code)
		s.Assert().False(s.decode(rec).Success)
	}
}

func (s *handlersTestSuite) TestUpdateStatus() {
	updated := &model.Lead{ID: testLeadID, Status: model.StatusContacted, Activities: make([]model.Activity, 0)}

	s.leadSvcMock.On("UpdateStatus", mock.Anything, testLeadID, model.StatusContacted).Return(updated, nil).Once()

	req, rec := s.request(http.MethodPatch, "/api/lead/"+testLeadID+"/status", `{"status":"Contacted"}`)
	s.app.ServeHTTP(rec, req)

	s.T().Log("status update must answer 200 with the updated lead")
	{
		s.Assert().Equal(http.StatusOK, rec.Code)

		env := s.decode(rec)
		s.Assert().True(env.Success)
		s.Assert().Equal("Lead status updated successfully", env.Message)

		var lead model.Lead
		s.Require().NoError(json.Unmarshal(env.Data, &lead))
		s.Assert().Equal(model.StatusContacted, lead.Status)
	}
}

func (s *handlersTestSuite) TestUpdateStatusMissing() {
	req, rec := s.request(http.MethodPatch, "/api/lead/"+testLeadID+"/status", `{}`)
	s.app.ServeHTTP(rec, req)

	s.T().Log("missing status must answer 400 before the service is touched")
	{
		s.Assert().Equal(http.StatusBadRequest, rec.Code)
		s.Assert().False(s.decode(rec).Success)
		s.leadSvcMock.AssertNotCalled(s.T(), "UpdateStatus", mock.Anything, testLeadID, model.Status(""))
	}
}

func (s *handlersTestSuite) TestUpdateStatusUnknownLead() {
	s.leadSvcMock.On("UpdateStatus", mock.Anything, "missing", model.StatusContacted).Return(nil, apperrors.NewNotFoundErr("lead not found")).Once()

	req, rec := s.request(http.MethodPatch, "/api/lead/missing/status", `{"status":"Contacted"}`)
	s.app.ServeHTTP(rec, req)

	s.T().Log("unknown lead must answer 404")
	{
		s.Assert().Equal(http.StatusNotFound, rec.Code)
		s.Assert().False(s.decode(rec).Success)
	}
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(handlersTestSuite))
}
