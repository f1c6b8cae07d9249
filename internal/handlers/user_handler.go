package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Harshadsshinde/hospital-management-system/internal/apierr"
	"github.com/Harshadsshinde/hospital-management-system/internal/middleware"
	"github.com/Harshadsshinde/hospital-management-system/internal/models"
	"github.com/Harshadsshinde/hospital-management-system/internal/store"
	"github.com/Harshadsshinde/hospital-management-system/internal/utils"
)

type registerRequest struct {
	FirstName string `json:"firstName" form:"firstName" binding:"required,min=3"`
	LastName  string `json:"lastName" form:"lastName" binding:"required,min=3"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Phone     string `json:"phone" form:"phone" binding:"required,len=10"`
	NIC       string `json:"nic" form:"nic" binding:"required,min=2,max=13"`
	DOB       string `json:"dob" form:"dob" binding:"required"`
	Gender    string `json:"gender" form:"gender" binding:"required,oneof=Male Female"`
	Password  string `json:"password" form:"password" binding:"required,min=8"`
}

type doctorRequest struct {
	registerRequest
	DoctorDepartment string `form:"doctorDepartment" binding:"required"`
}

type loginRequest struct {
	Email           string      `json:"email" binding:"required,email"`
	Password        string      `json:"password" binding:"required"`
	ConfirmPassword string      `json:"confirmPassword" binding:"required"`
	Role            models.Role `json:"role" binding:"required,oneof=Patient Doctor Admin"`
}

// buildUser turns a validated registration request into a User document,
// hashing the password first and persisting second.
func (h *Handler) buildUser(req *registerRequest, role models.Role) (*models.User, error) {
	dob, err := parseDate(req.DOB)
	if err != nil {
		return nil, apierr.BadRequest("Provide A Valid DOB!")
	}
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	return &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		NIC:       req.NIC,
		DOB:       dob,
		Gender:    req.Gender,
		Password:  hashed,
		Role:      role,
	}, nil
}

// sendToken issues a session token for the user, delivers it in the
// role-scoped HTTP-only cookie and echoes it in the response body.
func (h *Handler) sendToken(c *gin.Context, user *models.User, status int, message string) {
	tokenStr, _, err := h.Tokens.Issue(user.ID.Hex())
	if err != nil {
		fail(c, err)
		return
	}

	cookieName := middleware.PatientCookie
	if user.Role == models.RoleAdmin {
		cookieName = middleware.AdminCookie
	}
	c.SetCookie(cookieName, tokenStr, int(h.Tokens.TTL().Seconds()), "/", "", false, true)

	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"user":    user,
		"token":   tokenStr,
	})
}

// RegisterPatient handles POST /api/v1/user/patient/register.
func (h *Handler) RegisterPatient(c *gin.Context) {
	var req registerRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	if _, err := h.Users.FindByEmail(c.Request.Context(), req.Email); err == nil {
		fail(c, apierr.BadRequest("User Already Registered!"))
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		fail(c, err)
		return
	}

	user, err := h.buildUser(&req, models.RolePatient)
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.Users.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			fail(c, apierr.BadRequest("User Already Registered!"))
			return
		}
		fail(c, err)
		return
	}

	h.sendToken(c, user, http.StatusOK, "User Registered!")
}

// Login handles POST /api/v1/user/login. Every credential mismatch returns
// the same message so a caller cannot tell which check failed.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	invalidCredentials := apierr.BadRequest("Invalid Email Or Password!")
	if req.Password != req.ConfirmPassword {
		fail(c, invalidCredentials)
		return
	}

	user, err := h.Users.FindByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		fail(c, invalidCredentials)
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		fail(c, invalidCredentials)
		return
	}
	if req.Role != user.Role {
		fail(c, invalidCredentials)
		return
	}

	user.Password = ""
	h.sendToken(c, user, http.StatusCreated, "Login Successfully!")
}

// AddNewAdmin handles POST /api/v1/user/admin/addnew. The caller's admin
// session stays the authenticated party; no token is issued for the new
// admin, who logs in themselves.
func (h *Handler) AddNewAdmin(c *gin.Context) {
	var req registerRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	if _, err := h.Users.FindByEmail(c.Request.Context(), req.Email); err == nil {
		fail(c, apierr.BadRequest("Admin With This Email Already Exists!"))
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		fail(c, err)
		return
	}

	admin, err := h.buildUser(&req, models.RoleAdmin)
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.Users.Create(c.Request.Context(), admin); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			fail(c, apierr.BadRequest("Admin With This Email Already Exists!"))
			return
		}
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "New Admin Registered",
		"admin":   admin,
	})
}

var allowedAvatarFormats = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

// AddNewDoctor handles POST /api/v1/user/doctor/addnew: multipart form with
// the doctor fields plus a required avatar image, which is staged to a temp
// file and pushed to the external image host.
func (h *Handler) AddNewDoctor(c *gin.Context) {
	file, err := c.FormFile("docAvatar")
	if err != nil {
		fail(c, apierr.BadRequest("Doctor Avatar Required!"))
		return
	}
	contentType := file.Header.Get("Content-Type")
	if !allowedAvatarFormats[contentType] {
		fail(c, apierr.BadRequest("File Format Not Supported!"))
		return
	}

	var req doctorRequest
	if err := bindForm(c, &req); err != nil {
		fail(c, err)
		return
	}

	if _, err := h.Users.FindByEmail(c.Request.Context(), req.Email); err == nil {
		fail(c, apierr.BadRequest("Doctor With This Email Already Exists!"))
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		fail(c, err)
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		fail(c, err)
		return
	}
	defer os.Remove(tmpPath)

	uploaded, err := h.Avatars.Upload(c.Request.Context(), tmpPath, contentType)
	if err != nil {
		h.Log.Error("avatar upload failed", "error", err)
		fail(c, apierr.Internal("Failed To Upload Doctor Avatar!"))
		return
	}

	doctor, err := h.buildUser(&req.registerRequest, models.RoleDoctor)
	if err != nil {
		fail(c, err)
		return
	}
	doctor.DoctorDepartment = req.DoctorDepartment
	doctor.DocAvatar = &models.Avatar{
		PublicID: uploaded.PublicID,
		URL:      uploaded.URL,
	}

	if err := h.Users.Create(c.Request.Context(), doctor); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			fail(c, apierr.BadRequest("Doctor With This Email Already Exists!"))
			return
		}
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "New Doctor Registered",
		"doctor":  doctor,
	})
}

// GetAllDoctors handles GET /api/v1/user/doctors.
func (h *Handler) GetAllDoctors(c *gin.Context) {
	doctors, err := h.Users.Doctors(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "doctors": doctors})
}

// GetUserDetails returns the user loaded by the auth gate.
func (h *Handler) GetUserDetails(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		fail(c, apierr.BadRequest("User is not authenticated!"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// LogoutAdmin clears the admin session cookie.
func (h *Handler) LogoutAdmin(c *gin.Context) {
	c.SetCookie(middleware.AdminCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Admin Logged Out Successfully.",
	})
}

// LogoutPatient clears the patient session cookie.
func (h *Handler) LogoutPatient(c *gin.Context) {
	c.SetCookie(middleware.PatientCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Patient Logged Out Successfully.",
	})
}
