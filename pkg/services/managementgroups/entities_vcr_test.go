package managementgroups_test

import (
	"context"
	"net/http"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/dnaeon/go-vcr/recorder"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/Azure/azure-arm-clients-go/pkg/core"
	. "github.com/Azure/azure-arm-clients-go/pkg/services/managementgroups"
)

var _ = Describe("Recorded entity listing", func() {
	var rec *recorder.Recorder

	BeforeEach(func() {
		var err error
		rec, err = recorder.NewAsMode("testdata/entities_list", recorder.ModeReplaying, nil)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(rec.Stop()).To(Succeed())
	})

	It("posts every page and walks the hierarchy", func() {
		client := newClient(&http.Client{Transport: rec})

		entities, err := core.AllPages(context.Background(), client.Entities().List(nil),
			func(page EntityListResult) []EntityInfo { return page.Value })
		Expect(err).NotTo(HaveOccurred())
		Expect(entities).To(HaveLen(3))

		root := entities[0].Properties
		Expect(root.Parent).To(BeNil())
		Expect(to.Int64(root.NumberOfDescendants)).To(Equal(int64(2)))

		sub := entities[2]
		Expect(to.String(sub.Type)).To(Equal(string(ChildTypeSubscription)))
		Expect(sub.Properties.Permissions).To(Equal(Noaccess))
		Expect(sub.Properties.InheritedPermissions).To(Equal(View))
		Expect(sub.Properties.ParentNameChain).To(Equal([]string{"contoso-root", "engineering"}))
	})
})
