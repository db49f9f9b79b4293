package routes

import (
	"net/http"

	"gurukul/admin"
	"gurukul/auth"
	"gurukul/blogs"
	"gurukul/categories"
	"gurukul/courses"
	"gurukul/crud"
	"gurukul/currentaffairs"
	"gurukul/gallery"
	"gurukul/home"
	"gurukul/middleware"
	"gurukul/models"
	"gurukul/pages"
	"gurukul/ratelim"
	"gurukul/results"
	"gurukul/search"
	"gurukul/settings"
	"gurukul/sliders"
	"gurukul/testimonials"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
}

func AddBlogRoutes(router *httprouter.Router) {
	router.GET("/api/admin/blogs", middleware.Authenticate(blogs.GetBlogs))
	router.POST("/api/admin/blogs", middleware.Authenticate(blogs.CreateBlog))
	router.GET("/api/admin/blogs/:id", middleware.Authenticate(crud.GetOne[models.Blog](blogs.Res)))
	router.PUT("/api/admin/blogs/:id", middleware.Authenticate(blogs.UpdateBlog))
	router.PATCH("/api/admin/blogs/:id", middleware.Authenticate(crud.ToggleActive[models.Blog](blogs.Res)))
	router.DELETE("/api/admin/blogs/:id", middleware.Authenticate(crud.Delete(blogs.Res)))

	router.GET("/api/blogs", blogs.GetPublicBlogs)
	router.GET("/api/blogs/:slug", blogs.GetBlogBySlug)
}

func AddCategoryRoutes(router *httprouter.Router) {
	router.GET("/api/admin/blog-categories", middleware.Authenticate(crud.GetAll[models.BlogCategory](categories.Res)))
	router.POST("/api/admin/blog-categories", middleware.Authenticate(categories.CreateCategory))
	router.GET("/api/admin/blog-categories/:id", middleware.Authenticate(crud.GetOne[models.BlogCategory](categories.Res)))
	router.PUT("/api/admin/blog-categories/:id", middleware.Authenticate(categories.UpdateCategory))
	router.PATCH("/api/admin/blog-categories/:id", middleware.Authenticate(crud.ToggleActive[models.BlogCategory](categories.Res)))
	router.DELETE("/api/admin/blog-categories/:id", middleware.Authenticate(crud.Delete(categories.Res)))

	router.GET("/api/admin/sub-categories", middleware.Authenticate(categories.GetSubCategories))
	router.POST("/api/admin/sub-categories", middleware.Authenticate(categories.CreateSubCategory))
	router.GET("/api/admin/sub-categories/:id", middleware.Authenticate(crud.GetOne[models.SubCategory](categories.SubRes)))
	router.PUT("/api/admin/sub-categories/:id", middleware.Authenticate(categories.UpdateSubCategory))
	router.PATCH("/api/admin/sub-categories/:id", middleware.Authenticate(crud.ToggleActive[models.SubCategory](categories.SubRes)))
	router.DELETE("/api/admin/sub-categories/:id", middleware.Authenticate(crud.Delete(categories.SubRes)))
}

func AddCourseRoutes(router *httprouter.Router) {
	router.GET("/api/admin/courses", middleware.Authenticate(crud.GetAll[models.Course](courses.Res)))
	router.POST("/api/admin/courses", middleware.Authenticate(courses.CreateCourse))
	router.GET("/api/admin/courses/:id", middleware.Authenticate(crud.GetOne[models.Course](courses.Res)))
	router.PUT("/api/admin/courses/:id", middleware.Authenticate(courses.UpdateCourse))
	router.PATCH("/api/admin/courses/:id", middleware.Authenticate(crud.ToggleActive[models.Course](courses.Res)))
	router.DELETE("/api/admin/courses/:id", middleware.Authenticate(crud.Delete(courses.Res)))

	router.GET("/api/courses", courses.GetPublicCourses)
	router.GET("/api/courses/:slug", courses.GetCourseBySlug)
}

func AddCurrentAffairRoutes(router *httprouter.Router) {
	router.GET("/api/admin/current-affairs", middleware.Authenticate(currentaffairs.GetCurrentAffairs))
	router.POST("/api/admin/current-affairs", middleware.Authenticate(currentaffairs.CreateCurrentAffair))
	router.GET("/api/admin/current-affairs/:id", middleware.Authenticate(crud.GetOne[models.CurrentAffair](currentaffairs.Res)))
	router.PUT("/api/admin/current-affairs/:id", middleware.Authenticate(currentaffairs.UpdateCurrentAffair))
	router.PATCH("/api/admin/current-affairs/:id", middleware.Authenticate(crud.ToggleActive[models.CurrentAffair](currentaffairs.Res)))
	router.DELETE("/api/admin/current-affairs/:id", middleware.Authenticate(crud.Delete(currentaffairs.Res)))

	router.GET("/api/current-affairs", currentaffairs.GetPublicCurrentAffairs)
	router.GET("/api/current-affairs/:id", currentaffairs.GetCurrentAffair)
}

func AddResultRoutes(router *httprouter.Router) {
	router.GET("/api/admin/results", middleware.Authenticate(crud.GetAll[models.Result](results.Res)))
	router.POST("/api/admin/results", middleware.Authenticate(results.CreateResult))
	router.GET("/api/admin/results/:id", middleware.Authenticate(crud.GetOne[models.Result](results.Res)))
	router.PUT("/api/admin/results/:id", middleware.Authenticate(results.UpdateResult))
	router.PATCH("/api/admin/results/:id", middleware.Authenticate(crud.ToggleActive[models.Result](results.Res)))
	router.DELETE("/api/admin/results/:id", middleware.Authenticate(crud.Delete(results.Res)))
	// PrintResult validates the token itself to stamp the issuer on the PDF
	router.GET("/api/admin/results/:id/print", results.PrintResult)

	router.GET("/api/results", results.GetPublicResults)
	router.GET("/api/results/verify", ratelim.RateLimit(results.VerifyResult))
}

func AddTestimonialRoutes(router *httprouter.Router) {
	router.GET("/api/admin/testimonials", middleware.Authenticate(crud.GetAll[models.Testimonial](testimonials.Res)))
	router.POST("/api/admin/testimonials", middleware.Authenticate(testimonials.CreateTestimonial))
	router.GET("/api/admin/testimonials/:id", middleware.Authenticate(crud.GetOne[models.Testimonial](testimonials.Res)))
	router.PUT("/api/admin/testimonials/:id", middleware.Authenticate(testimonials.UpdateTestimonial))
	router.PATCH("/api/admin/testimonials/:id", middleware.Authenticate(crud.ToggleActive[models.Testimonial](testimonials.Res)))
	router.DELETE("/api/admin/testimonials/:id", middleware.Authenticate(crud.Delete(testimonials.Res)))

	router.GET("/api/testimonials", testimonials.GetPublicTestimonials)
}

func AddSliderRoutes(router *httprouter.Router) {
	router.GET("/api/admin/sliders", middleware.Authenticate(crud.GetAll[models.Slider](sliders.Res)))
	router.POST("/api/admin/sliders", middleware.Authenticate(sliders.CreateSlider))
	router.GET("/api/admin/sliders/:id", middleware.Authenticate(crud.GetOne[models.Slider](sliders.Res)))
	router.PUT("/api/admin/sliders/:id", middleware.Authenticate(sliders.UpdateSlider))
	router.PATCH("/api/admin/sliders/:id", middleware.Authenticate(crud.ToggleActive[models.Slider](sliders.Res)))
	router.DELETE("/api/admin/sliders/:id", middleware.Authenticate(crud.Delete(sliders.Res)))

	router.GET("/api/sliders", sliders.GetPublicSliders)
}

func AddGalleryRoutes(router *httprouter.Router) {
	router.GET("/api/admin/gallery", middleware.Authenticate(crud.GetAll[models.GalleryImage](gallery.Res)))
	router.POST("/api/admin/gallery", middleware.Authenticate(gallery.CreateGalleryImage))
	router.GET("/api/admin/gallery/:id", middleware.Authenticate(crud.GetOne[models.GalleryImage](gallery.Res)))
	router.PUT("/api/admin/gallery/:id", middleware.Authenticate(gallery.UpdateGalleryImage))
	router.PATCH("/api/admin/gallery/:id", middleware.Authenticate(crud.ToggleActive[models.GalleryImage](gallery.Res)))
	router.DELETE("/api/admin/gallery/:id", middleware.Authenticate(crud.Delete(gallery.Res)))

	router.GET("/api/gallery", gallery.GetPublicGallery)
}

func AddPageRoutes(router *httprouter.Router) {
	router.GET("/api/admin/pages", middleware.Authenticate(crud.GetAll[models.Page](pages.Res)))
	router.POST("/api/admin/pages", middleware.Authenticate(pages.CreatePage))
	router.GET("/api/admin/pages/:id", middleware.Authenticate(crud.GetOne[models.Page](pages.Res)))
	router.PUT("/api/admin/pages/:id", middleware.Authenticate(pages.UpdatePage))
	router.PATCH("/api/admin/pages/:id", middleware.Authenticate(crud.ToggleActive[models.Page](pages.Res)))
	router.DELETE("/api/admin/pages/:id", middleware.Authenticate(crud.Delete(pages.Res)))

	router.GET("/api/pages", pages.GetPublicPages)
	router.GET("/api/pages/:slug", pages.GetPageBySlug)
}

func AddSettingsRoutes(router *httprouter.Router) {
	router.GET("/api/admin/settings", middleware.Authenticate(settings.GetSettings))
	router.PUT("/api/admin/settings", middleware.Authenticate(settings.UpdateSettings))

	router.GET("/api/settings", settings.GetSettings)
}

func AddHomeRoutes(router *httprouter.Router) {
	router.GET("/api/home", home.GetHome)
}

func AddSearchRoutes(router *httprouter.Router) {
	router.GET("/api/search", ratelim.RateLimit(search.SearchHandler))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.GET("/api/admin/stats", middleware.Authenticate(admin.GetStats))
}
