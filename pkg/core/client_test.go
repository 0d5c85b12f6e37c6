package core_test

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	azfake "github.com/Azure/azure-sdk-for-go/sdk/azcore/fake"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/mocks"
	"github.com/go-logr/logr/funcr"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	. "github.com/Azure/azure-arm-clients-go/pkg/core"
	azerr "github.com/Azure/azure-arm-clients-go/pkg/errors"
)

const apiVersion = "2021-11-01"

type scopeCredential struct {
	scopes []string
	err    error
	calls  int
}

func (s *scopeCredential) GetToken(_ context.Context, opts policy.TokenRequestOptions) (azcore.AccessToken, error) {
	s.calls++
	s.scopes = opts.Scopes
	if s.err != nil {
		return azcore.AccessToken{}, s.err
	}
	return azcore.AccessToken{Token: "t0k3n"}, nil
}

type namespace struct {
	Name     *string `json:"name,omitempty"`
	Location string  `json:"location"`
}

var _ = Describe("Client", func() {
	Describe("New", func() {
		It("defaults to the public cloud and an endpoint scope", func() {
			c, err := New(&azfake.TokenCredential{})
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Endpoint).To(Equal("https://management.azure.com"))
			Expect(c.Scopes).To(Equal([]string{"https://management.azure.com/.default"}))
			Expect(c.UserAgent).To(ContainSubstring("azure-arm-clients-go"))
		})

		It("derives the scope from a custom endpoint", func() {
			c, err := New(&azfake.TokenCredential{}, WithEndpoint("https://management.example.com/"))
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Endpoint).To(Equal("https://management.example.com"))
			Expect(c.Scopes).To(Equal([]string{"https://management.example.com/.default"}))
		})

		It("selects a named cloud", func() {
			c, err := New(&azfake.TokenCredential{}, WithCloud("AzureUSGovernmentCloud"))
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Endpoint).To(Equal("https://management.usgovcloudapi.net"))
		})

		It("drops duplicate scopes", func() {
			c, err := New(&azfake.TokenCredential{}, WithScopes("a/.default", "b/.default", "a/.default", ""))
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Scopes).To(Equal([]string{"a/.default", "b/.default"}))
		})

		It("rejects bad configuration", func() {
			_, err := New(nil)
			Expect(err).To(HaveOccurred())

			_, err = New(&azfake.TokenCredential{}, WithEndpoint("management.azure.com"))
			Expect(err).To(HaveOccurred())

			_, err = New(&azfake.TokenCredential{}, WithCloud("NoSuchCloud"))
			Expect(err).To(HaveOccurred())
		})

		It("accepts an authorizer instead of a credential", func() {
			c, err := New(nil, WithAuthorizer(autorest.NullAuthorizer{}))
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Authorizer).To(Equal(autorest.NullAuthorizer{}))
		})
	})

	Describe("Prepare", func() {
		It("substitutes escaped path parameters and adds the api version", func() {
			c, err := New(&azfake.TokenCredential{})
			Expect(err).NotTo(HaveOccurred())

			req, err := c.Prepare(context.Background(), Request{
				Method:     http.MethodPut,
				APIVersion: apiVersion,
				Path:       "/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/Microsoft.Relay/namespaces/{namespaceName}",
				PathParameters: map[string]string{
					"subscriptionId":    "sub",
					"resourceGroupName": "my group",
					"namespaceName":     "ns1",
				},
				Query:   map[string]interface{}{"$top": int32(5)},
				Headers: map[string]string{"Cache-Control": "no-cache"},
				Body:    namespace{Location: "westus2"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(req.Method).To(Equal(http.MethodPut))
			Expect(req.URL.Host).To(Equal("management.azure.com"))
			Expect(req.URL.Path).To(Equal("/subscriptions/sub/resourceGroups/my group/providers/Microsoft.Relay/namespaces/ns1"))
			Expect(req.URL.Query().Get("api-version")).To(Equal(apiVersion))
			Expect(req.URL.Query().Get("$top")).To(Equal("5"))
			Expect(req.Header.Get("Cache-Control")).To(Equal("no-cache"))
			Expect(req.Header.Get("x-ms-client-request-id")).NotTo(BeEmpty())
			Expect(req.Header.Get("Content-Type")).To(HavePrefix("application/json"))
		})
	})

	Describe("Call", func() {
		var (
			transport *fakeTransport
			cred      *scopeCredential
			c         Client
		)

		newClient := func(opts ...Option) {
			var err error
			cred = &scopeCredential{}
			opts = append([]Option{WithSender(transport.Sender()), WithRetry(0, 0), WithLogger(log)}, opts...)
			c, err = New(cred, opts...)
			Expect(err).NotTo(HaveOccurred())
		}

		get := Request{
			Operation:      "relay.NamespacesClient.Get",
			Method:         http.MethodGet,
			APIVersion:     apiVersion,
			Path:           "/subscriptions/{subscriptionId}/providers/Microsoft.Relay/namespaces/{namespaceName}",
			PathParameters: map[string]string{"subscriptionId": "sub", "namespaceName": "ns1"},
		}

		It("attaches a bearer token for the client scopes and decodes the body", func() {
			transport = newFakeTransport(jsonResponse(http.StatusOK, `{"name":"ns1","location":"westus2"}`))
			newClient()

			var result namespace
			resp, err := c.Call(context.Background(), get, Into(&result), http.StatusOK)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(*result.Name).To(Equal("ns1"))
			Expect(result.Location).To(Equal("westus2"))

			Expect(transport.requests).To(HaveLen(1))
			Expect(transport.requests[0].Header.Get("Authorization")).To(Equal("Bearer t0k3n"))
			Expect(cred.scopes).To(Equal([]string{"https://management.azure.com/.default"}))
		})

		It("decodes by status code", func() {
			transport = newFakeTransport(jsonResponse(http.StatusCreated, `{"name":"created","location":"westus2"}`))
			newClient()

			var updated, created namespace
			resp, err := c.Call(context.Background(), get, ByStatus(map[int]interface{}{
				http.StatusOK:      &updated,
				http.StatusCreated: &created,
			}), http.StatusOK, http.StatusCreated)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusCreated))
			Expect(created.Name).NotTo(BeNil())
			Expect(updated.Name).To(BeNil())
		})

		It("accepts an empty body", func() {
			transport = newFakeTransport(jsonResponse(http.StatusNoContent, ""))
			newClient()

			var result namespace
			resp, err := c.Call(context.Background(), get, Into(&result), http.StatusOK, http.StatusNoContent)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusNoContent))
		})

		It("collapses unexpected statuses into one generic error", func() {
			transport = newFakeTransport(jsonResponse(http.StatusNotFound, `{"error":{"code":"NotFound","message":"no such namespace"}}`))
			newClient()

			var result namespace
			_, err := c.Call(context.Background(), get, Into(&result), http.StatusOK)
			Expect(err).To(HaveOccurred())

			var de autorest.DetailedError
			Expect(errors.As(err, &de)).To(BeTrue())
			Expect(de.StatusCode).To(Equal(http.StatusNotFound))
			Expect(azerr.IsNotFound(err)).To(BeTrue())
			Expect(string(azerr.Body(err))).To(ContainSubstring("no such namespace"))
		})

		It("surfaces JSON errors", func() {
			transport = newFakeTransport(jsonResponse(http.StatusOK, `{"name":`))
			newClient()

			var result namespace
			_, err := c.Call(context.Background(), get, Into(&result), http.StatusOK)
			Expect(err).To(HaveOccurred())
			Expect(azerr.IsHTTPError(err)).To(BeFalse())
		})

		It("fails before sending when no token can be acquired", func() {
			transport = newFakeTransport()
			newClient()
			cred.err = errors.New("login required")

			_, err := c.Call(context.Background(), get, nil, http.StatusOK)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("login required"))
			Expect(transport.requests).To(BeEmpty())
		})

		It("does not retry a credential failure with the default retry policy", func() {
			transport = newFakeTransport()
			cred = &scopeCredential{err: errors.New("no credential configured")}
			var err error
			c, err = New(cred, WithSender(transport.Sender()), WithLogger(log))
			Expect(err).NotTo(HaveOccurred())

			start := time.Now()
			_, err = c.Call(context.Background(), get, nil, http.StatusOK)
			Expect(err).To(MatchError(ContainSubstring("no credential configured")))
			Expect(time.Since(start)).To(BeNumerically("<", time.Second))
			Expect(cred.calls).To(Equal(1))
			Expect(transport.requests).To(BeEmpty())
			Expect(azerr.IsHTTPError(err)).To(BeFalse())
		})

		It("closes the body when the transport fails with a response", func() {
			body := mocks.NewBody("partial")
			failing := autorest.SenderFunc(func(r *http.Request) (*http.Response, error) {
				resp := mocks.NewResponseWithBodyAndStatus(body, http.StatusOK, "200 OK")
				resp.Request = r
				return resp, errors.New("connection reset")
			})
			var err error
			c, err = New(&scopeCredential{}, WithSender(failing), WithRetry(0, 0), WithLogger(log))
			Expect(err).NotTo(HaveOccurred())

			_, err = c.Call(context.Background(), get, nil, http.StatusOK)
			Expect(err).To(MatchError(ContainSubstring("connection reset")))
			Expect(body.IsOpen()).To(BeFalse())
		})

		It("retries retryable statuses in the pipeline", func() {
			transport = newFakeTransport(
				jsonResponse(http.StatusServiceUnavailable, ""),
				jsonResponse(http.StatusOK, `{"location":"westus2"}`),
			)
			newClient(WithRetry(2, 0))

			var result namespace
			_, err := c.Call(context.Background(), get, Into(&result), http.StatusOK)
			Expect(err).NotTo(HaveOccurred())
			Expect(transport.requests).To(HaveLen(2))
			Expect(result.Location).To(Equal("westus2"))
		})

		It("dumps traffic without the bearer token when debugging", func() {
			var lines []string
			debugLog := funcr.New(func(prefix, args string) {
				lines = append(lines, args)
			}, funcr.Options{})

			transport = newFakeTransport(jsonResponse(http.StatusOK, `{"location":"westus2"}`))
			newClient(WithLogger(debugLog), WithDebug())

			_, err := c.Call(context.Background(), get, nil, http.StatusOK)
			Expect(err).NotTo(HaveOccurred())

			all := strings.Join(lines, "\n")
			Expect(all).To(ContainSubstring("REDACTED"))
			Expect(all).NotTo(ContainSubstring("t0k3n"))
			Expect(all).To(ContainSubstring("westus2"))
			Expect(transport.requests[0].Header.Get("Authorization")).To(Equal("Bearer t0k3n"))
		})
	})
})
