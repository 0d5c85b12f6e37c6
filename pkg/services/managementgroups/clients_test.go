package managementgroups_test

import (
	"context"
	"net/http"

	"github.com/Azure/go-autorest/autorest/to"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/Azure/azure-arm-clients-go/pkg/core"
	azerr "github.com/Azure/azure-arm-clients-go/pkg/errors"
	. "github.com/Azure/azure-arm-clients-go/pkg/services/managementgroups"
)

const groupBody = `{"id":"/providers/Microsoft.Management/managementGroups/ops","type":"Microsoft.Management/managementGroups","name":"ops","properties":{"tenantId":"t","displayName":"Operations"}}`

var _ = Describe("Management group clients", func() {
	var (
		ctx       = context.Background()
		transport *fakeTransport
		client    Client
	)

	BeforeEach(func() {
		transport = &fakeTransport{}
		client = newClient(transport)
	})

	Describe("ManagementGroups", func() {
		It("sends the optional get parameters", func() {
			transport.responses = []*http.Response{respond(http.StatusOK, groupBody)}

			group, err := client.ManagementGroups().Get(ctx, "ops", &GetOptions{
				Expand:       ExpandChildren,
				Recurse:      to.BoolPtr(true),
				Filter:       "children.childType ne Subscription",
				CacheControl: "no-cache",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(*group.Properties.DisplayName).To(Equal("Operations"))

			req := transport.requests[0]
			Expect(req.URL.Path).To(Equal("/providers/Microsoft.Management/managementGroups/ops"))
			q := req.URL.Query()
			Expect(q.Get("api-version")).To(Equal(APIVersion))
			Expect(q.Get("$expand")).To(Equal("children"))
			Expect(q.Get("$recurse")).To(Equal("true"))
			Expect(q.Get("$filter")).To(Equal("children.childType ne Subscription"))
			Expect(req.Header.Get("Cache-Control")).To(Equal("no-cache"))
		})

		It("leaves unset options out of the request", func() {
			transport.responses = []*http.Response{respond(http.StatusOK, groupBody)}

			_, err := client.ManagementGroups().Get(ctx, "ops", nil)
			Expect(err).NotTo(HaveOccurred())

			req := transport.requests[0]
			Expect(req.URL.Query()).To(HaveLen(1))
			Expect(req.Header.Get("Cache-Control")).To(BeEmpty())
		})

		It("returns the group on 200", func() {
			transport.responses = []*http.Response{respond(http.StatusOK, groupBody)}

			result, err := client.ManagementGroups().CreateOrUpdate(ctx, "ops", CreateManagementGroupRequest{
				Properties: &CreateManagementGroupProperties{DisplayName: to.StringPtr("Operations")},
			}, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Accepted()).To(BeFalse())
			Expect(result.Operation).To(BeNil())
			Expect(*result.Group.Name).To(Equal("ops"))
			Expect(transport.bodies[0]).To(MatchJSON(`{"properties":{"displayName":"Operations"}}`))
		})

		It("returns the asynchronous operation on 202", func() {
			transport.responses = []*http.Response{respond(http.StatusAccepted, `{"id":"/providers/Microsoft.Management/operationResults/create/ops","name":"ops","status":"Running"}`)}

			result, err := client.ManagementGroups().CreateOrUpdate(ctx, "ops", CreateManagementGroupRequest{}, "no-cache")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Accepted()).To(BeTrue())
			Expect(result.Group).To(BeNil())
			Expect(*result.Operation.Status).To(Equal("Running"))
		})

		It("distinguishes the delete outcomes", func() {
			transport.responses = []*http.Response{
				respond(http.StatusAccepted, `{"name":"ops","status":"Running"}`),
				respond(http.StatusNoContent, ""),
			}

			accepted, err := client.ManagementGroups().Delete(ctx, "ops", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(accepted.Accepted()).To(BeTrue())
			Expect(*accepted.Operation.Status).To(Equal("Running"))

			gone, err := client.ManagementGroups().Delete(ctx, "ops", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(gone.Accepted()).To(BeFalse())
			Expect(gone.Operation).To(BeNil())
		})

		It("rejects 200 on delete", func() {
			transport.responses = []*http.Response{respond(http.StatusOK, `{}`)}

			_, err := client.ManagementGroups().Delete(ctx, "ops", "")
			Expect(azerr.StatusCode(err)).To(Equal(http.StatusOK))
		})

		It("pages through descendants with $top only on the first request", func() {
			transport.responses = []*http.Response{
				respond(http.StatusOK, `{"value":[{"name":"a"},{"name":"b"}],"nextLink":"/providers/Microsoft.Management/managementGroups/ops/descendants?api-version=2020-05-01&$skiptoken=b"}`),
				respond(http.StatusOK, `{"value":[{"name":"c"}]}`),
			}

			all, err := core.AllPages(ctx, client.ManagementGroups().GetDescendants("ops", &DescendantsOptions{Top: to.Int32Ptr(2)}),
				func(page DescendantListResult) []DescendantInfo { return page.Value })
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(3))

			Expect(transport.requests[0].URL.Query().Get("$top")).To(Equal("2"))
			second := transport.requests[1].URL
			Expect(second.Host).To(Equal("management.azure.com"))
			Expect(second.Query().Get("$skiptoken")).To(Equal("b"))
			Expect(second.Query().Get("$top")).To(BeEmpty())
		})

		It("lists with cache control", func() {
			transport.responses = []*http.Response{respond(http.StatusOK, `{"value":[{"name":"ops","properties":{"displayName":"Operations"}}]}`)}

			pager := client.ManagementGroups().List(&ListOptions{CacheControl: "no-cache"})
			Expect(pager.More()).To(BeTrue())
			page, err := pager.NextPage(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Value).To(HaveLen(1))
			Expect(pager.More()).To(BeFalse())
			Expect(transport.requests[0].Header.Get("Cache-Control")).To(Equal("no-cache"))
		})

		It("validates the group id", func() {
			_, err := client.ManagementGroups().Get(ctx, "", nil)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("groupId"))
			Expect(transport.requests).To(BeEmpty())
		})
	})

	Describe("Subscriptions", func() {
		It("moves a subscription under a group", func() {
			transport.responses = []*http.Response{respond(http.StatusOK, `{"name":"00000000-0000-0000-0000-000000000000","properties":{"displayName":"Dev","state":"Active","parent":{"id":"/providers/Microsoft.Management/managementGroups/ops"}}}`)}

			sub, err := client.Subscriptions().Create(ctx, "ops", "00000000-0000-0000-0000-000000000000", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(*sub.Properties.State).To(Equal("Active"))

			req := transport.requests[0]
			Expect(req.Method).To(Equal(http.MethodPut))
			Expect(req.URL.Path).To(Equal("/providers/Microsoft.Management/managementGroups/ops/subscriptions/00000000-0000-0000-0000-000000000000"))
			Expect(transport.bodies[0]).To(BeEmpty())
		})

		It("accepts both delete outcomes", func() {
			transport.responses = []*http.Response{respond(http.StatusOK, ""), respond(http.StatusNoContent, "")}

			first, err := client.Subscriptions().Delete(ctx, "ops", "sub", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(first.StatusCode).To(Equal(http.StatusOK))

			second, err := client.Subscriptions().Delete(ctx, "ops", "sub", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(second.StatusCode).To(Equal(http.StatusNoContent))
		})

		It("lists subscriptions under a group", func() {
			transport.responses = []*http.Response{respond(http.StatusOK, `{"value":[{"name":"sub1"},{"name":"sub2"}],"nextLink":null}`)}

			subs, err := core.AllPages(ctx, client.Subscriptions().GetSubscriptionsUnderManagementGroup("ops", ""),
				func(page ListSubscriptionUnderManagementGroup) []SubscriptionUnderManagementGroup { return page.Value })
			Expect(err).NotTo(HaveOccurred())
			Expect(subs).To(HaveLen(2))
			Expect(transport.requests[0].URL.Path).To(Equal("/providers/Microsoft.Management/managementGroups/ops/subscriptions"))
		})
	})

	Describe("HierarchySettings", func() {
		It("replaces and patches the default settings", func() {
			settings := `{"id":"/providers/Microsoft.Management/managementGroups/root/settings/default","name":"default","properties":{"requireAuthorizationForGroupCreation":true,"defaultManagementGroup":"/providers/Microsoft.Management/managementGroups/landing"}}`
			transport.responses = []*http.Response{respond(http.StatusOK, settings), respond(http.StatusOK, settings)}

			request := CreateOrUpdateSettingsRequest{Properties: &CreateOrUpdateSettingsProperties{RequireAuthorizationForGroupCreation: to.BoolPtr(true)}}
			result, err := client.HierarchySettings().CreateOrUpdate(ctx, "root", request)
			Expect(err).NotTo(HaveOccurred())
			Expect(*result.Properties.RequireAuthorizationForGroupCreation).To(BeTrue())

			_, err = client.HierarchySettings().Update(ctx, "root", request)
			Expect(err).NotTo(HaveOccurred())

			Expect(transport.requests[0].Method).To(Equal(http.MethodPut))
			Expect(transport.requests[1].Method).To(Equal(http.MethodPatch))
			Expect(transport.requests[1].URL.Path).To(Equal("/providers/Microsoft.Management/managementGroups/root/settings/default"))
			Expect(transport.bodies[1]).To(MatchJSON(`{"properties":{"requireAuthorizationForGroupCreation":true}}`))
		})

		It("lists settings in one response", func() {
			transport.responses = []*http.Response{respond(http.StatusOK, `{"value":[{"name":"default"}]}`)}

			list, err := client.HierarchySettings().List(ctx, "root")
			Expect(err).NotTo(HaveOccurred())
			Expect(list.Value).To(HaveLen(1))
			Expect(transport.requests[0].URL.Path).To(HaveSuffix("/root/settings"))
		})

		It("deletes the settings", func() {
			transport.responses = []*http.Response{respond(http.StatusOK, "")}
			Expect(client.HierarchySettings().Delete(ctx, "root")).To(Succeed())
		})
	})

	Describe("Entities", func() {
		It("keeps POST when following the next link", func() {
			transport.responses = []*http.Response{
				respond(http.StatusOK, `{"count":2,"value":[{"name":"root","properties":{"permissions":"edit"}}],"nextLink":"https://management.azure.com/providers/Microsoft.Management/getEntities?api-version=2020-05-01&$skiptoken=root"}`),
				respond(http.StatusOK, `{"count":2,"value":[{"name":"ops","properties":{"permissions":"view","parentNameChain":["root"]}}]}`),
			}

			entities, err := core.AllPages(ctx, client.Entities().List(&EntitiesListOptions{
				Top:       to.Int32Ptr(1),
				Search:    "AllowedParents",
				View:      EntityViewGroupsOnly,
				GroupName: "ops",
			}), func(page EntityListResult) []EntityInfo { return page.Value })
			Expect(err).NotTo(HaveOccurred())
			Expect(entities).To(HaveLen(2))
			Expect(entities[1].Properties.ParentNameChain).To(Equal([]string{"root"}))

			first := transport.requests[0]
			Expect(first.Method).To(Equal(http.MethodPost))
			Expect(first.URL.Path).To(Equal("/providers/Microsoft.Management/getEntities"))
			Expect(first.URL.Query().Get("$view")).To(Equal("GroupsOnly"))
			Expect(first.URL.Query().Get("groupName")).To(Equal("ops"))
			Expect(first.URL.Query().Get("$search")).To(Equal("AllowedParents"))
			Expect(transport.requests[1].Method).To(Equal(http.MethodPost))
		})
	})

	Describe("Provider operations", func() {
		It("checks name availability", func() {
			transport.responses = []*http.Response{respond(http.StatusOK, `{"nameAvailable":false,"reason":"AlreadyExists","message":"taken"}`)}

			result, err := client.CheckNameAvailability(ctx, CheckNameAvailabilityRequest{Name: to.StringPtr("ops"), Type: ResourceTypeManagementGroups})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Reason).To(Equal(AlreadyExists))
			Expect(transport.bodies[0]).To(MatchJSON(`{"name":"ops","type":"Microsoft.Management/managementGroups"}`))
		})

		It("starts a backfill and reads its status", func() {
			transport.responses = []*http.Response{
				respond(http.StatusOK, `{"tenantId":"t","status":"Started"}`),
				respond(http.StatusOK, `{"tenantId":"t","status":"Completed"}`),
			}

			started, err := client.StartTenantBackfill(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(started.Status).To(Equal(Started))

			status, err := client.TenantBackfillStatus(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(status.Status).To(Equal(Completed))

			Expect(transport.requests[0].Method).To(Equal(http.MethodPost))
			Expect(transport.requests[0].URL.Path).To(Equal("/providers/Microsoft.Management/startTenantBackfill"))
			Expect(transport.requests[1].URL.Path).To(Equal("/providers/Microsoft.Management/tenantBackfillStatus"))
		})

		It("lists operations", func() {
			transport.responses = []*http.Response{respond(http.StatusOK, `{"value":[{"name":"Microsoft.Management/managementGroups/read"}]}`)}

			ops, err := core.AllPages(ctx, client.Operations().List(), func(page OperationListResult) []Operation { return page.Value })
			Expect(err).NotTo(HaveOccurred())
			Expect(ops).To(HaveLen(1))
		})
	})
})
