package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite wraps a bare gin engine that tests register handlers on
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// MakeRequest sends body as JSON. A []byte or string body is sent as is.
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeaders(method, url, body, nil)
}

// MakeRequestWithHeaders is MakeRequest with extra request headers
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		reqBody = bytes.NewReader(b)
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		jsonBytes, _ := json.Marshal(b)
		reqBody = bytes.NewReader(jsonBytes)
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	return suite.serve(req)
}

// FormFile is a file part of a multipart request. An empty ContentType
// leaves the part without one, so the server has to sniff the bytes.
type FormFile struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

// MakeMultipartRequest sends fields and files as multipart/form-data
func (suite *HTTPTestSuite) MakeMultipartRequest(method, url string, fields map[string]string, files []FormFile) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		_ = writer.WriteField(key, value)
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.Field+`"; filename="`+f.Filename+`"`)
		if f.ContentType != "" {
			h.Set("Content-Type", f.ContentType)
		}
		part, _ := writer.CreatePart(h)
		_, _ = part.Write(f.Data)
	}
	_ = writer.Close()

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return suite.serve(req)
}

func (suite *HTTPTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// AssertErrorResponse asserts an {"error": ...} body containing expectedMessage
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assert.Equal(t, expectedStatus, recorder.Code)

	var errorResponse map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errorResponse))

	if expectedMessage != "" {
		assert.Contains(t, errorResponse["error"], expectedMessage)
	}
}

// AssertFailureResponse asserts a {"success": false, "message": ...} body
func AssertFailureResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assert.Equal(t, expectedStatus, recorder.Code)

	var failure struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &failure))
	require.NotNil(t, failure.Success, "missing success flag")
	assert.False(t, *failure.Success)
	assert.Equal(t, expectedMessage, failure.Message)
}

// ParseJSONResponse parses JSON response into target struct
func ParseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
}

// MockHTTPRequest represents a mock HTTP request for testing
type MockHTTPRequest struct {
	Method  string
	URL     string
	Body    interface{}
	Headers map[string]string
}

// MockHTTPResponse is the expected status and, when Body is set, JSON body
type MockHTTPResponse struct {
	Status int
	Body   interface{}
}

// HTTPTestCase represents a test case for HTTP handlers
type HTTPTestCase struct {
	Name             string
	Request          MockHTTPRequest
	ExpectedResponse MockHTTPResponse
	Setup            func()
	Teardown         func()
}

// RunHTTPTestCases runs each case as a subtest
func (suite *HTTPTestSuite) RunHTTPTestCases(t *testing.T, testCases []HTTPTestCase) {
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if tc.Setup != nil {
				tc.Setup()
			}
			if tc.Teardown != nil {
				defer tc.Teardown()
			}

			recorder := suite.MakeRequestWithHeaders(tc.Request.Method, tc.Request.URL, tc.Request.Body, tc.Request.Headers)

			assert.Equal(t, tc.ExpectedResponse.Status, recorder.Code)
			if tc.ExpectedResponse.Body != nil {
				expectedJSON, err := json.Marshal(tc.ExpectedResponse.Body)
				require.NoError(t, err)
				assert.JSONEq(t, string(expectedJSON), recorder.Body.String())
			}
		})
	}
}
