package managementgroups_test

import (
	"encoding/json"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	. "github.com/Azure/azure-arm-clients-go/pkg/services/managementgroups"
)

var _ = Describe("Models", func() {
	table.DescribeTable("permissions",
		func(in string, known bool) {
			var props EntityInfoProperties
			Expect(json.Unmarshal([]byte(`{"permissions":"`+in+`"}`), &props)).To(Succeed())
			Expect(string(props.Permissions)).To(Equal(in))
			Expect(props.Permissions.IsKnown()).To(Equal(known))
		},
		table.Entry("noaccess", "noaccess", true),
		table.Entry("delete", "delete", true),
		table.Entry("future value", "owner", false),
	)

	It("decodes a hierarchy with subscription children", func() {
		in := `{
			"id": "/providers/Microsoft.Management/managementGroups/root",
			"type": "Microsoft.Management/managementGroups",
			"name": "root",
			"properties": {
				"tenantId": "20000000-0000-0000-0000-000000000000",
				"displayName": "Tenant Root Group",
				"details": {"version": 2, "updatedTime": "2020-05-01T10:00:00Z", "updatedBy": "admin", "path": [{"name": "root", "displayName": "Tenant Root Group"}]},
				"children": [
					{"type": "Microsoft.Management/managementGroups", "id": "/providers/Microsoft.Management/managementGroups/child", "name": "child", "displayName": "Child",
					 "children": [{"type": "/subscriptions", "id": "/subscriptions/00000000-0000-0000-0000-000000000000", "name": "00000000-0000-0000-0000-000000000000"}]}
				]
			}
		}`
		var group ManagementGroup
		Expect(json.Unmarshal([]byte(in), &group)).To(Succeed())
		Expect(*group.Name).To(Equal("root"))
		Expect(*group.Properties.Details.Version).To(Equal(2.0))
		Expect(group.Properties.Details.Path).To(HaveLen(1))

		child := group.Properties.Children[0]
		Expect(child.Type).To(Equal(ChildTypeManagementGroup))
		Expect(child.Children[0].Type).To(Equal(ChildTypeSubscription))

		out, err := json.Marshal(group)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(MatchJSON(in))
	})

	It("keeps unknown backfill states", func() {
		var status TenantBackfillStatusResult
		Expect(json.Unmarshal([]byte(`{"tenantId":"t","status":"Paused"}`), &status)).To(Succeed())
		Expect(status.Status.IsKnown()).To(BeFalse())
		Expect(cmp.Diff(TenantBackfillStatus("Paused"), status.Status)).To(BeEmpty())
	})

	It("reports continuation links", func() {
		link := "https://management.azure.com/providers/Microsoft.Management/getEntities?api-version=2020-05-01&$skiptoken=abc"
		Expect(EntityListResult{NextLink: &link}.Continuation()).To(Equal(link))
		Expect(ListResult{}.Continuation()).To(BeEmpty())
		Expect(DescendantListResult{}.Continuation()).To(BeEmpty())
	})
})
